package shell

// Issue identifies an anticipated failure of a shell command. Every Issue is
// reported to the user as a fixed string; none of them ever propagates as an
// error value past the handler that detected it.
type Issue int

const (
	IssueUnknown Issue = iota
	IssueNotPermitted
	IssueInvalidDirName // declared for future name validation, not raised yet
	IssueWrongParamCount
	IssueNotImplemented // declared, not raised
	IssueDirExists
	IssueDirNameEmpty
	IssueDirNotEmpty
	IssueMissingSourceFile
	IssueNoSuchDir
	IssueNoSuchObject
)

// Message returns the user-facing string for the issue. Anything
// unrecognized falls back to the generic message.
func (issue Issue) Message() string {
	switch issue {
	case IssueNotPermitted:
		return "Not authorized to access resource."
	case IssueInvalidDirName:
		return "Directory name is invalid."
	case IssueWrongParamCount:
		return "Incorrect number of parameters provided"
	case IssueNotImplemented:
		return "Functionality not implemented yet!"
	case IssueDirExists:
		return "Directory already exists."
	case IssueDirNameEmpty:
		return "Directory name cannot be empty."
	case IssueDirNotEmpty:
		return "Directory is not empty."
	case IssueMissingSourceFile:
		return "Source file cannot be found."
	case IssueNoSuchDir:
		return "Directory does not exist."
	case IssueNoSuchObject:
		return "Destination File does not exist."
	default:
		return "Something was not correct with the request. Try again."
	}
}
