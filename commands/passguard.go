package commands

type PassGuardCommand struct {
	Check    CheckCommand    `command:"check" description:"Rate the strength of one or more passwords"`
	Generate GenerateCommand `command:"generate" description:"Generate cryptographically strong passwords"`
	Version  VersionCommand  `command:"version" description:"Displays passguard version" alias:"V"`
}

var PassGuard PassGuardCommand
