//go:build arm64

package scan

import "golang.org/x/sys/cpu"

func init() {
	bulkEnabled = cpu.ARM64.HasASIMD
}
