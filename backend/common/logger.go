package common

import (
	"fmt"
	"log"
	"os"
)

var (
	sysLogger = log.New(os.Stderr, "", log.LstdFlags)
)

func SysLog(s string) {
	sysLogger.Println("[SYS] " + s)
}

func SysError(s string) {
	sysLogger.Println("[ERR] " + s)
}

func FatalLog(v any) {
	sysLogger.Println("[FATAL] " + fmt.Sprint(v))
	os.Exit(1)
}
