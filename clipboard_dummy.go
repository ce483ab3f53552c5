// golang.design/x/clipboard thinks
// crashing is the best solution despite it having a
// Init funciton that returns an error...

//go:build js || (!windows && !cgo)

package main

var TheClipboardManager struct {
	Initialized bool
}

func InitClipboardManager() {
	InfoLogger.Info("initializing clipboard")
	WarnLogger.Warn("clipboard is disabled")
}

func ClipboardWriteText(str string) {
}
