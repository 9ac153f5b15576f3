// Package contract reports caller-side precondition breaches (contract
// violations) raised by the fixedseq containers.
//
// A violation is programmer error, never an expected runtime state. The
// process-wide handler decides what happens next: the default Abort handler
// terminates the process, Raise panics with a *Violation, and Log records
// the breach and lets the container refuse the operation.
//
// The handler cell is plain package state. Reconfigure it during start-up or
// from a single goroutine; it is not safe for concurrent mutation.
package contract

import (
	"path"
	"runtime"
	"strconv"
	"strings"
)

// Location is the source position of the call that breached a contract.
// File is empty and Line is zero when the report mode omits them.
type Location struct {
	File string
	Line int
}

// String formats the location as file:line, line, or the empty string.
func (l Location) String() string {
	switch {
	case l.File != "" && l.Line > 0:
		return l.File + ":" + strconv.Itoa(l.Line)
	case l.File != "":
		return l.File
	case l.Line > 0:
		return "line " + strconv.Itoa(l.Line)
	}
	return ""
}

// Violation is the structured failure value raised by the Raise handler.
type Violation struct {
	Location  Location
	Condition string
}

// Error implements the error interface.
func (v *Violation) Error() string {
	var b strings.Builder
	b.WriteString("contract violation")
	if loc := v.Location.String(); loc != "" {
		b.WriteString(" at ")
		b.WriteString(loc)
	}
	if v.Condition != "" {
		b.WriteString(": ")
		b.WriteString(v.Condition)
	}
	return b.String()
}

// Handler receives every reported violation. Either argument may be empty
// depending on the active ReportMode.
type Handler func(loc Location, condition string)

// ReportMode selects how much detail reaches the handler.
type ReportMode int

const (
	// ReportLine passes the line number and condition text (default).
	ReportLine ReportMode = iota
	// ReportFull passes file, line and condition text.
	ReportFull
	// ReportCondition passes only the condition text.
	ReportCondition
	// ReportNone invokes the handler with neither location nor condition.
	ReportNone
	// ReportOff never invokes the handler. Containers still refuse the
	// offending operation.
	ReportOff
)

var reportModeNames = [...]string{
	ReportLine:      "line",
	ReportFull:      "full",
	ReportCondition: "condition",
	ReportNone:      "none",
	ReportOff:       "off",
}

func (m ReportMode) String() string {
	if m >= 0 && int(m) < len(reportModeNames) {
		return reportModeNames[m]
	}
	return "ReportMode(" + strconv.Itoa(int(m)) + ")"
}

// ParseReportMode maps a configuration name to a ReportMode.
func ParseReportMode(s string) (ReportMode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range reportModeNames {
		if name == s {
			return ReportMode(m), true
		}
	}
	return 0, false
}

var (
	handler    Handler = Abort
	reportMode         = ReportLine
)

// SetHandler installs h as the process-wide handler. A nil handler
// disables reporting.
func SetHandler(h Handler) {
	handler = h
}

// GetHandler returns the installed handler.
func GetHandler() Handler {
	return handler
}

// SetReportMode changes how much detail is passed to the handler.
func SetReportMode(m ReportMode) {
	reportMode = m
}

// GetReportMode returns the active report mode.
func GetReportMode() ReportMode {
	return reportMode
}

// Require reports a violation of condition when ok is false and returns ok.
// The reported location is the first caller outside the fixedseq packages,
// i.e. the user's call into the container.
func Require(ok bool, condition string) bool {
	if ok {
		return true
	}
	report(condition)
	return false
}

// Fail reports condition unconditionally with the same location rules as
// Require.
func Fail(condition string) {
	report(condition)
}

// libraryDirs holds the source directories of this package and its parent.
var libraryDirs = func() map[string]bool {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return nil
	}
	dir := path.Dir(file)
	return map[string]bool{dir: true, path.Dir(dir): true}
}()

// callerOutside returns the first frame above report that is not library
// code. Test files count as callers.
func callerOutside() (file string, line int, ok bool) {
	var pcs [32]uintptr
	// Skip runtime.Callers, callerOutside and report.
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if f.File != "" && (!libraryDirs[path.Dir(f.File)] || strings.HasSuffix(f.File, "_test.go")) {
			return f.File, f.Line, true
		}
		if !more {
			return "", 0, false
		}
	}
}

func report(condition string) {
	h := handler
	if h == nil || reportMode == ReportOff {
		return
	}
	var loc Location
	switch reportMode {
	case ReportFull, ReportLine:
		if file, line, ok := callerOutside(); ok {
			loc.Line = line
			if reportMode == ReportFull {
				loc.File = file
			}
		}
	case ReportNone:
		condition = ""
	}
	h(loc, condition)
}
