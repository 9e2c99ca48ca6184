package commands_test

import (
	"os"

	"github.com/arthur-debert/warden/pkg/testutil"
)

func writeRaw(f *testutil.Fleet, handle, content string) error {
	return os.WriteFile(f.Paths.SettingsPath(handle), []byte(content), 0644)
}
