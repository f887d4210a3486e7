package scenepool

// Violation names a diagnostic fault detected by a Pool.
type Violation string

const (
	// ViolationDoubleRelease is an instance released while already idle.
	ViolationDoubleRelease Violation = "double_release"
	// ViolationAliasedGet is an idle entry pointing at an outstanding instance.
	ViolationAliasedGet Violation = "aliased_get"
)

// Recorder receives pool activity, typically to export metrics.
// Every method is called synchronously from the pool operation.
type Recorder interface {
	ObserveCreate(pool string)
	ObserveGenerate(pool string)
	ObserveRelease(pool string)
	ObserveDiscard(pool string)
	ObserveViolation(pool string, violation Violation)
	ObserveSizes(pool string, outstanding, idle int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCreate(string) {}
func (nopRecorder) ObserveGenerate(string) {}
func (nopRecorder) ObserveRelease(string) {}
func (nopRecorder) ObserveDiscard(string) {}
func (nopRecorder) ObserveViolation(string, Violation) {}
func (nopRecorder) ObserveSizes(string, int, int) {}
