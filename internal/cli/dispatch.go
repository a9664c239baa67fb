package cli

// Operation is the single action a run performs after the optional
// runtime install step
type Operation int

const (
	// OpHelp prints usage and performs no filesystem mutation
	OpHelp Operation = iota
	// OpShow prints a descriptor's content
	OpShow
	// OpGenConfig prints the default configuration as TOML
	OpGenConfig
	// OpList prints the reconciliation report
	OpList
	// OpRemove deletes a descriptor
	OpRemove
	// OpCreate regenerates descriptors for the resolved targets
	OpCreate
	// OpNone does nothing further (e.g. --install-libfuse2 alone)
	OpNone
)

// Request captures the parsed command line
type Request struct {
	Show           string
	GenConfig      bool
	List           bool
	Remove         string
	Create         bool
	InstallRuntime bool
	Tokens         []string
}

// Plan is the resolved sequence for a run: at most one runtime install
// followed by exactly one operation. Keeping this a value makes the
// mutually-exclusive flag rules testable without running a process.
type Plan struct {
	// InstallRuntime runs before Op when set
	InstallRuntime bool

	Op Operation

	// Name is the identifier for OpShow and OpRemove
	Name string

	// Tokens are the bundle tokens for OpCreate; empty means the whole
	// bundle directory
	Tokens []string
}

// Dispatch resolves a request into a plan. Selection is mutually
// exclusive in priority order, first matching rule wins:
// show, gen-config, list, remove, then create (the default whenever
// bundle tokens are present). A bare invocation is a help request, not
// an error. --install-libfuse2 combines with anything except show and
// gen-config, which preempt every other step.
func Dispatch(req Request) Plan {
	if req.Show != "" {
		return Plan{Op: OpShow, Name: req.Show}
	}
	if req.GenConfig {
		return Plan{Op: OpGenConfig}
	}

	plan := Plan{InstallRuntime: req.InstallRuntime}

	switch {
	case req.List:
		plan.Op = OpList
	case req.Remove != "":
		plan.Op = OpRemove
		plan.Name = req.Remove
	case req.Create || len(req.Tokens) > 0:
		plan.Op = OpCreate
		plan.Tokens = req.Tokens
	case req.InstallRuntime:
		plan.Op = OpNone
	default:
		plan.Op = OpHelp
		plan.InstallRuntime = false
	}

	return plan
}
