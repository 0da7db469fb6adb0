package manifest

import (
	"io/fs"

	"emperror.dev/errors"
	"github.com/BurntSushi/toml"
	"github.com/je4/utils/v2/pkg/config"
)

// Entry describes one desired filesystem object.
type Entry struct {
	Path    string           `toml:"path"`
	Kind    string           `toml:"kind"`
	Mode    string           `toml:"mode"`
	Content config.EnvString `toml:"content"`
	Forward bool             `toml:"forward"`
}

type Config struct {
	Entry []*Entry `toml:"entry"`
}

func LoadConfig(fSys fs.FS, fp string, conf *Config) error {
	data, err := fs.ReadFile(fSys, fp)
	if err != nil {
		return errors.Wrapf(err, "cannot read file [%v] %s", fSys, fp)
	}
	if _, err := toml.Decode(string(data), conf); err != nil {
		return errors.Wrapf(err, "error loading manifest file %v", fp)
	}
	return nil
}
