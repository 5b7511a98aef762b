package config

const (
	defaultOutputDir            = "~/.local/share/ertnotes/out"
	defaultLogDir               = "~/.local/share/ertnotes/logs"
	defaultSupervisor           = "Slickduck"
	defaultSupervisorVisibility = "non-roster"
	defaultAssigneeSuffix       = "-cds.txt"
	defaultNonRosterFile        = "non-healer-cds.txt"
	defaultEncapsulatedFile     = "encapsulated-cds.txt"
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

// defaultRosterNames is the shipped healer roster. It seeds the sample
// configuration and the defaults; real deployments override it.
func defaultRosterNames() []string {
	return []string{"Hôsteric", "Delvur", "Yashar", "Pv", "Runnz", "Lífeforce", "Seiton"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Roster: Roster{
			Names:                defaultRosterNames(),
			Supervisor:           defaultSupervisor,
			SupervisorVisibility: defaultSupervisorVisibility,
		},
		Output: Output{
			AssigneeSuffix:   defaultAssigneeSuffix,
			NonRosterFile:    defaultNonRosterFile,
			EncapsulatedFile: defaultEncapsulatedFile,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
