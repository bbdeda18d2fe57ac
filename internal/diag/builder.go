package diag

func New(sev Severity, code Code, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
	}
}

func NewWarning(code Code, msg string) Diagnostic {
	return New(SevWarning, code, msg)
}
