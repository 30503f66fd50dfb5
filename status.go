package glsteps

import "strings"

// StatusKind selects which success flag checkStatus queries.
type StatusKind int

const (
	CompileStatus StatusKind = iota
	LinkStatus
)

// Label returns the fixed log label for a failed check.
func (k StatusKind) Label(stage ShaderStage) string {
	if k == LinkStatus {
		return "ERROR::SHADER::PROGRAM::LINKING_FAILED"
	}
	return "ERROR::SHADER::" + stage.String() + "::COMPILATION_FAILED"
}

// checkStatus queries the success flag for handle and, on failure, its
// info log. Drivers may return an empty log for a failed object, in which
// case a generic diagnostic is substituted so failures are never silent.
func checkStatus(d Driver, handle uint32, kind StatusKind) (bool, string) {
	var ok bool
	var log string
	switch kind {
	case CompileStatus:
		if ok = d.ShaderCompiled(handle); !ok {
			log = d.ShaderInfoLog(handle)
		}
	case LinkStatus:
		if ok = d.ProgramLinked(handle); !ok {
			log = d.ProgramInfoLog(handle)
		}
	}
	if ok {
		return true, ""
	}
	log = strings.TrimRight(log, "\x00\n ")
	if log == "" {
		log = "no diagnostic reported by driver"
	}
	return false, log
}
