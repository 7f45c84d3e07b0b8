package echolog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abdulachik/legendaly/internal/locale"
)

const (
	logFileName   = "legendaly.log"
	dbFileName    = "legendaly.db"
	indexFileName = "echoes.veclite"
	echoesExt     = ".echoes"
)

// Paths is the on-disk layout under the home directory.
type Paths struct {
	Home   string
	Logs   string
	Echoes string
	Data   string
}

// DefaultHome returns ~/.legendaly.
func DefaultHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".legendaly"), nil
}

// NewPaths lays out the directories below home.
func NewPaths(home string) Paths {
	return Paths{
		Home:   home,
		Logs:   filepath.Join(home, "logs"),
		Echoes: filepath.Join(home, "echoes"),
		Data:   filepath.Join(home, "data"),
	}
}

// Ensure creates every directory.
func (p Paths) Ensure() error {
	for _, dir := range []string{p.Home, p.Logs, p.Echoes, p.Data} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// LogFile is the rolling log shared by all sessions.
func (p Paths) LogFile() string {
	return filepath.Join(p.Logs, logFileName)
}

// Database is the default SQLite path.
func (p Paths) Database() string {
	return filepath.Join(p.Data, dbFileName)
}

// Index is the default veclite path.
func (p Paths) Index() string {
	return filepath.Join(p.Data, indexFileName)
}

// SessionFile returns the echoes file of a session started at start.
func (p Paths) SessionFile(start time.Time, tone string, lang locale.Language) string {
	return filepath.Join(p.Echoes, SessionFileName(start, tone, lang))
}

// SessionFileName is "<yyyyMMddHHmmssfff>-<tone>-<lang>.echoes".
func SessionFileName(start time.Time, tone string, lang locale.Language) string {
	stamp := fmt.Sprintf("%s%03d", start.Format("20060102150405"), start.Nanosecond()/int(time.Millisecond))
	tone = strings.NewReplacer("/", "_", string(filepath.Separator), "_", " ", "_").Replace(tone)
	return fmt.Sprintf("%s-%s-%s%s", stamp, tone, lang, echoesExt)
}
