package runner

import (
	"os"
	"strconv"

	"github.com/logrusorgru/aurora/v4"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
	envutil "github.com/projectdiscovery/utils/env"
	fileutil "github.com/projectdiscovery/utils/file"

	"github.com/willyanxd/arpmonit/pkg/arpscan"
)

var au = aurora.New(aurora.WithColors(true))

var (
	BinaryEnv   = envutil.GetEnvOrDefault("ARPMONIT_BINARY", arpscan.DefaultBinary)
	IntervalEnv = envutil.GetEnvOrDefault("ARPMONIT_INTERVAL", "60")
)

// Options contains the configuration options for the scan runner.
type Options struct {
	Interface  string              `yaml:"interface"`
	Subnets    goflags.StringSlice `yaml:"subnets"`
	Timeout    int                 `yaml:"timeout"`
	Binary     string              `yaml:"binary"`
	OuiDBFile  string              `yaml:"oui-db"`
	ConfigFile string              `yaml:"-"`

	JSON    bool `yaml:"json"`
	NoColor bool `yaml:"no-color"`

	Watch    bool `yaml:"watch"`
	Interval int  `yaml:"interval"`

	ListInterfaces bool `yaml:"-"`
	Version        bool `yaml:"-"`
	Verbose        bool `yaml:"verbose"`
	Silent         bool `yaml:"silent"`
}

// ParseOptions parses the command line flags provided by a user
func ParseOptions() *Options {
	options := &Options{}
	flagSet := goflags.NewFlagSet()

	flagSet.SetDescription(`arpmonit discovers live hosts on a local IPv4 subnet using the arp-scan binary`)

	defaultInterval := 60
	if val, err := strconv.Atoi(IntervalEnv); err == nil && val > 0 {
		defaultInterval = val
	}

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&options.Interface, "interface", "i", "", "network interface to bind the scan to"),
		flagSet.StringSliceVarP(&options.Subnets, "subnet", "s", nil, "subnet to scan in CIDR or plain-address form (comma separated)", goflags.NormalizedStringSliceOptions),
	)

	flagSet.CreateGroup("scan", "Scan",
		flagSet.IntVarP(&options.Timeout, "timeout", "t", 5, "per-host probe timeout in seconds"),
		flagSet.StringVarP(&options.Binary, "binary", "b", BinaryEnv, "path to the arp-scan binary"),
		flagSet.BoolVarP(&options.Watch, "watch", "w", false, "rescan continuously and report new devices"),
		flagSet.IntVar(&options.Interval, "interval", defaultInterval, "seconds between scans in watch mode"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&options.JSON, "json", "j", false, "write discovered devices as json"),
		flagSet.StringVarP(&options.OuiDBFile, "oui-db", "od", "", "json file with additional mac prefix to vendor mappings"),
		flagSet.BoolVarP(&options.NoColor, "no-color", "nc", false, "disable output content coloring (ANSI escape codes)"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&options.ConfigFile, "config", "", "yaml configuration file"),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVarP(&options.ListInterfaces, "list-interfaces", "li", false, "list usable network interfaces then exit"),
		flagSet.BoolVar(&options.Version, "version", false, "show version of the project"),
		flagSet.BoolVarP(&options.Verbose, "verbose", "v", false, "show verbose output"),
		flagSet.BoolVar(&options.Silent, "silent", false, "show only results in output"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	options.configureOutput()

	showBanner()

	if options.Version {
		gologger.Info().Msgf("Current Version: %s\n", version)
		os.Exit(0)
	}

	if options.ConfigFile != "" {
		if err := options.loadConfigFrom(options.ConfigFile); err != nil {
			gologger.Fatal().Msgf("Could not load config file %s: %s\n", options.ConfigFile, err)
		}
	}

	return options
}

// configureOutput configures the output on the screen
func (options *Options) configureOutput() {
	if options.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if options.NoColor {
		gologger.DefaultLogger.SetFormatter(formatter.NewCLI(true))
		au = aurora.New(aurora.WithColors(false))
	}
	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}
}

func (options *Options) loadConfigFrom(location string) error {
	data, err := os.ReadFile(location)
	if err != nil {
		return err
	}
	return fileutil.Unmarshal(fileutil.YAML, data, options)
}
