package ports

// PlanWriter persists generated plans.
//
//go:generate go run go.uber.org/mock/mockgen -source=plan_writer.go -destination=mocks/mock_plan_writer.go -package=mocks
type PlanWriter interface {
	// Write replaces the plan at path with data and reports whether the file
	// changed. An existing plan from an incompatible version is kept unless
	// force is set.
	Write(path string, data []byte, force bool) (bool, error)
}
