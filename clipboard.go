//go:build !js && (windows || cgo)

package main

import (
	"golang.design/x/clipboard"
)

var TheClipboardManager struct {
	Initialized bool
}

func InitClipboardManager() {
	cm := &TheClipboardManager
	InfoLogger.Info("initializing clipboard")
	err := clipboard.Init()
	cm.Initialized = err == nil
	if err != nil {
		WarnLogger.Warn("clipboard is disabled", "error", err)
	}
}

func ClipboardWriteText(str string) {
	cm := &TheClipboardManager
	if cm.Initialized {
		clipboard.Write(clipboard.FmtText, []byte(str))
	}
}
