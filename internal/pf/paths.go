package pf

// Fixed system locations. The anchor file is owned outright by this tool;
// pf.conf is only ever edited by appending or removing the include block.
const (
	AnchorName       = "com.securemacos"
	ConfPath         = "/etc/pf.conf"
	BackupPath       = "/etc/pf.conf.orig"
	AnchorPath       = "/etc/pf.anchors/" + AnchorName
	LaunchDaemonPath = "/Library/LaunchDaemons/com.securemacos.pfctl.plist"
)

type Paths struct {
	Conf         string
	Backup       string
	Anchor       string
	LaunchDaemon string
}

func DefaultPaths() Paths {
	return Paths{
		Conf:         ConfPath,
		Backup:       BackupPath,
		Anchor:       AnchorPath,
		LaunchDaemon: LaunchDaemonPath,
	}
}
