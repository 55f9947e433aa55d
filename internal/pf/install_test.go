package pf

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCtl records pfctl calls and fails on demand.
type fakeCtl struct {
	calls     []string
	loadErr   error
	enableErr error
	reloadErr error
}

func (f *fakeCtl) LoadAnchor(anchor, rulesFile string) error {
	f.calls = append(f.calls, "load-anchor")
	return f.loadErr
}

func (f *fakeCtl) Enable() error {
	f.calls = append(f.calls, "enable")
	return f.enableErr
}

func (f *fakeCtl) ShowAnchorRules(anchor string) error {
	f.calls = append(f.calls, "show-anchor-rules")
	return nil
}

func (f *fakeCtl) ShowStatus() error {
	f.calls = append(f.calls, "show-status")
	return nil
}

func (f *fakeCtl) ReloadConfig(confFile string) error {
	f.calls = append(f.calls, "reload-config")
	return f.reloadErr
}

func newTestEnv(t *testing.T) (Env, *fakeCtl) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, ConfPath, []byte(stockConf), 0644))

	ctl := &fakeCtl{}
	return Env{
		Fs:    fs,
		Paths: DefaultPaths(),
		Ctl:   ctl,
		Out:   &bytes.Buffer{},
	}, ctl
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestInstallEndToEnd(t *testing.T) {
	env, ctl := newTestEnv(t)

	require.NoError(t, Install(env, false))

	// Anchor file holds the exact ruleset
	assert.Equal(t, Ruleset, readFile(t, env.Fs, env.Paths.Anchor))

	// pf.conf ends with the include block, comment first
	conf := readFile(t, env.Fs, env.Paths.Conf)
	assert.True(t, strings.HasSuffix(conf,
		"# SecureMacOS pf anchor\n"+
			"anchor \"com.securemacos\"\n"+
			"load anchor \"com.securemacos\" from \"/etc/pf.anchors/com.securemacos\"\n"))

	// Backup equals the pre-install pf.conf
	assert.Equal(t, stockConf, readFile(t, env.Fs, env.Paths.Backup))

	// Load, enable, then the two verification listings, in order
	assert.Equal(t, []string{"load-anchor", "enable", "show-anchor-rules", "show-status"}, ctl.calls)
}

func TestInstallIdempotent(t *testing.T) {
	env, _ := newTestEnv(t)

	require.NoError(t, Install(env, false))
	confAfterFirst := readFile(t, env.Fs, env.Paths.Conf)

	require.NoError(t, Install(env, false))

	conf := readFile(t, env.Fs, env.Paths.Conf)
	assert.Equal(t, confAfterFirst, conf)
	assert.Equal(t, 1, strings.Count(conf, "# SecureMacOS pf anchor"), "no duplicate include block")
	assert.Equal(t, Ruleset, readFile(t, env.Fs, env.Paths.Anchor))
}

func TestInstallBackupNeverOverwritten(t *testing.T) {
	env, _ := newTestEnv(t)
	require.NoError(t, afero.WriteFile(env.Fs, env.Paths.Backup, []byte("original snapshot\n"), 0644))

	require.NoError(t, Install(env, false))

	assert.Equal(t, "original snapshot\n", readFile(t, env.Fs, env.Paths.Backup))
}

func TestInstallToleratesEnableFailure(t *testing.T) {
	env, ctl := newTestEnv(t)
	ctl.enableErr = errors.New("pf already enabled")

	require.NoError(t, Install(env, false))
	assert.Equal(t, []string{"load-anchor", "enable", "show-anchor-rules", "show-status"}, ctl.calls)
}

func TestInstallFailsWhenLoadFails(t *testing.T) {
	env, ctl := newTestEnv(t)
	ctl.loadErr = errors.New("syntax error")

	err := Install(env, false)
	require.Error(t, err)
	assert.NotContains(t, ctl.calls, "show-status", "aborts on first failing command")
}

func TestInstallPersistWritesLaunchDaemon(t *testing.T) {
	env, _ := newTestEnv(t)

	require.NoError(t, Install(env, true))

	plist := readFile(t, env.Fs, env.Paths.LaunchDaemon)
	assert.Contains(t, plist, "com.securemacos.pfctl")
	assert.Contains(t, plist, "/sbin/pfctl")
}

func TestInstallWithoutPersistSkipsLaunchDaemon(t *testing.T) {
	env, _ := newTestEnv(t)

	require.NoError(t, Install(env, false))

	exists, err := afero.Exists(env.Fs, env.Paths.LaunchDaemon)
	require.NoError(t, err)
	assert.False(t, exists)
}
