// FILE: lixenwraith/params/table.go
package params

import (
	"fmt"
	"math"
)

// StrLen is the capacity of every string parameter in the clustering table.
const StrLen = 10000

// Positional lists the parameters bound by position ahead of any -Name Value pairs.
var Positional = []string{"FileBase", "ElecNo"}

// Params holds every clustering engine parameter. The caller owns it and passes
// it by pointer to the engine; the registry only keeps accessors into its fields.
// Field names match parameter names, except nStarts which is exported as NStarts.
type Params struct {
	FileBase                   string  `param:"FileBase"`
	ElecNo                     int     `param:"ElecNo"`
	MinClusters                int     `param:"MinClusters"`
	MaxClusters                int     `param:"MaxClusters"`
	MaxPossibleClusters        int     `param:"MaxPossibleClusters"`
	NStarts                    int     `param:"nStarts"`
	RandomSeed                 int     `param:"RandomSeed"`
	Debug                      int8    `param:"Debug"` // 0 none, 1 partial, 2 full
	Verbose                    int     `param:"Verbose"`
	UseFeatures                string  `param:"UseFeatures"`
	DistDump                   int     `param:"DistDump"`
	DistThresh                 float64 `param:"DistThresh"`
	FullStepEvery              int     `param:"FullStepEvery"`
	ChangedThresh              float64 `param:"ChangedThresh"`
	Log                        bool    `param:"Log"`
	Screen                     bool    `param:"Screen"`
	MaxIter                    int     `param:"MaxIter"`
	StartCluFile               string  `param:"StartCluFile"`
	SplitEvery                 int     `param:"SplitEvery"`
	PenaltyK                   float64 `param:"PenaltyK"`
	PenaltyKLogN               float64 `param:"PenaltyKLogN"`
	Subset                     int     `param:"Subset"`
	PriorPoint                 int     `param:"PriorPoint"`
	SaveSorted                 bool    `param:"SaveSorted"`
	SaveCovarianceMeans        bool    `param:"SaveCovarianceMeans"`
	UseMaskedInitialConditions bool    `param:"UseMaskedInitialConditions"`
	AssignToFirstClosestMask   bool    `param:"AssignToFirstClosestMask"`
	UseDistributional          bool    `param:"UseDistributional"`
}

// Defaults returns a Params populated with the declared defaults.
func Defaults() *Params {
	return &Params{
		FileBase:            "electrode",
		ElecNo:              1,
		MinClusters:         20,
		MaxClusters:         30,
		MaxPossibleClusters: 100,
		NStarts:             1,
		RandomSeed:          1,
		Debug:               0,
		Verbose:             1,
		UseFeatures:         "11111111111100001",
		DistDump:            0,
		DistThresh:          math.Log(1000),
		FullStepEvery:       20,
		ChangedThresh:       .05,
		Log:                 true,
		Screen:              true,
		MaxIter:             500,
		StartCluFile:        "",
		SplitEvery:          40,
		PenaltyK:            0.0,
		PenaltyKLogN:        1.0,
		Subset:              1,
		PriorPoint:          1,
	}
}

// Table is the declarative parameter list for p, in documentation order.
// Default literals are the source text of the values set by Defaults.
func Table(p *Params) []Descriptor {
	return []Descriptor{
		String("FileBase", &p.FileBase, StrLen, `"electrode"`,
			"Filename base, files are of the form FileBase.fet.ElecNo, etc."),
		Int("ElecNo", &p.ElecNo, "1",
			"Electrode number, files are of the form FileBase.fet.ElecNo, etc."),
		Int("MinClusters", &p.MinClusters, "20",
			"Minimum number of clusters to be used without splitting."),
		Int("MaxClusters", &p.MaxClusters, "30",
			"Maximum number of clusters to be used without splitting."),
		Int("MaxPossibleClusters", &p.MaxPossibleClusters, "100",
			"Maximum possible number of clusters to be used after splitting."),
		Int("nStarts", &p.NStarts, "1",
			"Number of times to start count from each number of clusters."),
		Int("RandomSeed", &p.RandomSeed, "1",
			"Specify random seed for reproducible results, or leave for random."),
		Int("Debug", &p.Debug, "0",
			"Whether or not to run in debug mode (prints lots of detail). 0 = None, 1 = Partial info, 2=Full Info"),
		Int("Verbose", &p.Verbose, "1",
			"Whether or not to print information as the program runs."),
		String("UseFeatures", &p.UseFeatures, StrLen, `"11111111111100001"`,
			"String of 0s and 1s indicating which features to use."),
		Int("DistDump", &p.DistDump, "0",
			"???"),
		Float("DistThresh", &p.DistThresh, "log(1000)",
			"Points this far from best do not get an E step recomputation."),
		Int("FullStepEvery", &p.FullStepEvery, "20",
			"There is a full E step recomputation at least after this many iterations."),
		Float("ChangedThresh", &p.ChangedThresh, ".05",
			"If this fraction of points changed class last time, do a full step."),
		Bool("Log", &p.Log, "1",
			"Whether or not to save information to a log file."),
		Bool("Screen", &p.Screen, "1",
			"Log output to screen."),
		Int("MaxIter", &p.MaxIter, "500",
			"Maximum number of iterations."),
		String("StartCluFile", &p.StartCluFile, StrLen, `""`,
			"An intermediate cluster file to use as a starting point."),
		Int("SplitEvery", &p.SplitEvery, "40",
			"Allow cluster splitting after this many iterations."),
		Float("PenaltyK", &p.PenaltyK, "0.0",
			"Coefficient of 2*num_params to use in penalty (1 for AIC)."),
		Float("PenaltyKLogN", &p.PenaltyKLogN, "1.0",
			"Coefficient of num_params*log(num_points)/2 to use in penalty (1 for BIC)."),
		Int("Subset", &p.Subset, "1",
			"Do clustering on 1/Subset points, and then generalise to whole set."),
		Int("PriorPoint", &p.PriorPoint, "1",
			"Number of 'PriorPoints'"),
		Bool("SaveSorted", &p.SaveSorted, "false",
			"Save FileBase.sorted.*.ElecNo data files (data in sorted order)."),
		Bool("SaveCovarianceMeans", &p.SaveCovarianceMeans, "false",
			"Save covariance and means"),
		Bool("UseMaskedInitialConditions", &p.UseMaskedInitialConditions, "false",
			"Use mask based initial conditions"),
		Bool("AssignToFirstClosestMask", &p.AssignToFirstClosestMask, "false",
			"Assign to first closest mask in mask based initial conditions"),
		Bool("UseDistributional", &p.UseDistributional, "false",
			"Use distributional EM steps"),
	}
}

// NewRegistry registers the table for p and seals the registry.
func NewRegistry(p *Params) (*Registry, error) {
	if p == nil {
		return nil, fmt.Errorf("NewRegistry requires a non-nil *Params")
	}
	r := New()
	if err := r.RegisterAll(Table(p)...); err != nil {
		return nil, fmt.Errorf("failed to register parameter table: %w", err)
	}
	r.Seal()
	return r, nil
}
