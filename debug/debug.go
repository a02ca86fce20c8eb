package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("EDN_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
