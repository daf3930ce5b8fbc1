package pipeline

import (
	"fmt"
	"io/ioutil"
	"math"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/segmentio/objconv/msgpack"
	"github.com/will-rowe/quill/src/classifier"
	"github.com/will-rowe/quill/src/report"
)

// Config holds the settings that can be given in a TOML file
type Config struct {
	Order      int      `toml:"order"`
	Smoothing  float64  `toml:"smoothing"`
	Proc       int      `toml:"proc"`
	Extensions []string `toml:"extensions"`
}

// DefaultConfig returns the settings used when nothing else is given
func DefaultConfig() Config {
	return Config{
		Order:     3,
		Smoothing: 0.1,
		Proc:      runtime.NumCPU(),
	}
}

// LoadConfig reads a TOML file over the defaults, unknown keys are an error
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	meta, err := toml.DecodeFile(path, &config)
	if err != nil {
		return config, errors.Wrapf(err, "can't decode config file %v", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return config, fmt.Errorf("unknown keys in config file %v: %v", path, strings.Join(keys, ", "))
	}
	return config, config.Validate()
}

// Validate checks the settings
func (config Config) Validate() error {
	if config.Order <= 0 {
		return fmt.Errorf("order must be greater than 0")
	}
	if !(config.Smoothing > 0) || math.IsInf(config.Smoothing, 1) {
		return fmt.Errorf("smoothing must be greater than 0")
	}
	return nil
}

// Info stores the runtime information
type Info struct {
	Version   string
	NumProc   int
	Profiling bool
	Model     ModelCmd
	Identify  IdentifyCmd

	// results of the run
	Authors         []report.AuthorSummary
	Identifications []*report.Identification

	classifier *classifier.Classifier
}

// ModelCmd stores the runtime info for training the author models
type ModelCmd struct {
	Order       int
	Smoothing   float64
	TrainingDir string
	Extensions  []string
}

// IdentifyCmd stores the runtime info for the identify command
type IdentifyCmd struct {
	Inputs     []string
	ReportFile string
	Timings    bool
}

// NewInfo returns runtime info populated from a config
func NewInfo(version string, config Config) *Info {
	return &Info{
		Version: version,
		NumProc: config.Proc,
		Model: ModelCmd{
			Order:      config.Order,
			Smoothing:  config.Smoothing,
			Extensions: config.Extensions,
		},
	}
}

// AttachClassifier is a method to attach trained author models to the runtime
func (Info *Info) AttachClassifier(c *classifier.Classifier) {
	Info.classifier = c
}

// GetClassifier is a method to return the attached classifier
func (Info *Info) GetClassifier() *classifier.Classifier {
	return Info.classifier
}

// Dump is a method to dump the pipeline info to file
//
// Only the settings and results are written, the trained models are not.
func (Info *Info) Dump(path string) error {
	b, err := msgpack.Marshal(Info)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, b, 0644)
}

// Load is a method to load Info from file
func (Info *Info) Load(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	return Info.LoadFromBytes(data)
}

// LoadFromBytes is a method to load Info from bytes
func (Info *Info) LoadFromBytes(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("quill report appears empty")
	}
	return msgpack.Unmarshal(data, Info)
}
