package shell

import "strings"

// Dispatch parses one raw command line and routes it to the matching
// handler. Tokens are split on runs of whitespace; the first token is the
// verb, the rest are positional arguments. Quoting is not supported, so
// names with embedded spaces cannot be expressed.
func (self *Handler) Dispatch(line string) (string, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}

	switch parts[0] {
	case "createdir":
		if len(parts) < 2 {
			return IssueDirNameEmpty.Message(), nil
		}
		return self.CreateDir(parts[1])
	case "upload":
		// source and bucket are compulsory, the object name is optional
		if len(parts) < 3 {
			return IssueWrongParamCount.Message(), nil
		}
		key := ""
		if len(parts) > 3 {
			key = parts[3]
		}
		return self.Upload(parts[1], parts[2], key)
	case "download":
		// object and bucket are compulsory, the local file name is optional
		if len(parts) < 3 {
			return IssueWrongParamCount.Message(), nil
		}
		dst := ""
		if len(parts) > 3 {
			dst = parts[3]
		}
		return self.Download(parts[1], parts[2], dst)
	case "delete":
		if len(parts) < 3 {
			return IssueWrongParamCount.Message(), nil
		}
		return self.Delete(parts[1], parts[2])
	case "deletedir":
		if len(parts) < 2 {
			return IssueWrongParamCount.Message(), nil
		}
		return self.DeleteDir(parts[1])
	case "find":
		if len(parts) < 3 {
			return IssueWrongParamCount.Message(), nil
		}
		return self.Find(parts[1], parts[2])
	case "listdir":
		bucket := ""
		if len(parts) > 1 {
			bucket = parts[1]
		}
		return self.ListDir(bucket)
	default:
		return "Command not recognized.", nil
	}
}
