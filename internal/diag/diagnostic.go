package diag

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
}
