package pf

import (
	"fmt"

	"github.com/spf13/afero"
)

// launchDaemonPlist re-enables pf with the main configuration at boot.
// macOS does not keep pf enabled across reboots on its own.
const launchDaemonPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>Label</key>
    <string>com.securemacos.pfctl</string>
    <key>ProgramArguments</key>
    <array>
        <string>/sbin/pfctl</string>
        <string>-e</string>
        <string>-f</string>
        <string>/etc/pf.conf</string>
    </array>
    <key>RunAtLoad</key>
    <true/>
</dict>
</plist>
`

// InstallLaunchDaemon writes the boot plist, overwriting any prior copy.
func InstallLaunchDaemon(env Env) error {
	fmt.Fprintf(env.Out, "Installing LaunchDaemon %s...\n", env.Paths.LaunchDaemon)
	if err := afero.WriteFile(env.Fs, env.Paths.LaunchDaemon, []byte(launchDaemonPlist), 0644); err != nil {
		return fmt.Errorf("writing LaunchDaemon plist: %w", err)
	}
	return nil
}

// RemoveLaunchDaemon deletes the boot plist if present.
func RemoveLaunchDaemon(env Env) error {
	exists, err := afero.Exists(env.Fs, env.Paths.LaunchDaemon)
	if err != nil {
		return fmt.Errorf("checking LaunchDaemon plist: %w", err)
	}
	if !exists {
		return nil
	}
	if err := env.Fs.Remove(env.Paths.LaunchDaemon); err != nil {
		return fmt.Errorf("removing LaunchDaemon plist: %w", err)
	}
	fmt.Fprintf(env.Out, "Deleted %s\n", env.Paths.LaunchDaemon)
	return nil
}
