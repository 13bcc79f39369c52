package telegram

import (
	"fmt"
	"regexp"
	"strings"
)

type CommandType string

const (
	CmdAdd    CommandType = "add"
	CmdRemove CommandType = "remove"
	CmdList   CommandType = "list"
	CmdFind   CommandType = "find"
	CmdToday  CommandType = "today"
	CmdStats  CommandType = "stats"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// dateArg matches a DD.MM.YYYY token; validity of the calendar date is checked
// later by the roster, this only picks the token out of the argument list.
var dateArg = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// ParseCommand turns a message text like "/add Anna 01.01.2000 @anna" into a
// Command. A "/cmd@BotName" mention form is normalized to "/cmd".
func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	name := strings.TrimPrefix(parts[0], "/")
	if at := strings.Index(name, "@"); at >= 0 {
		name = name[:at]
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch strings.ToLower(name) {
	case "add":
		cmd.Type = CmdAdd
	case "remove", "rm", "delete":
		cmd.Type = CmdRemove
	case "list", "ls":
		cmd.Type = CmdList
	case "find", "search":
		cmd.Type = CmdFind
	case "today":
		cmd.Type = CmdToday
	case "stats":
		cmd.Type = CmdStats
	case "help", "start":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// AddArgs is the parsed argument list of an /add command.
type AddArgs struct {
	Name      string
	BirthDate string
	Username  string
}

// ParseAddArgs splits /add arguments into name, date and optional @username.
// Token order is free: the date is the DD.MM.YYYY token, the username is the
// @-prefixed token, everything else joins into the name.
func ParseAddArgs(args []string) (AddArgs, error) {
	var out AddArgs
	var nameParts []string

	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "@"):
			if out.Username != "" {
				return AddArgs{}, fmt.Errorf("more than one @username given")
			}
			out.Username = strings.TrimPrefix(arg, "@")
		case dateArg.MatchString(arg):
			if out.BirthDate != "" {
				return AddArgs{}, fmt.Errorf("more than one date given")
			}
			out.BirthDate = arg
		default:
			nameParts = append(nameParts, arg)
		}
	}

	out.Name = strings.Join(nameParts, " ")
	if out.Name == "" {
		return AddArgs{}, fmt.Errorf("name is missing")
	}
	if out.BirthDate == "" {
		return AddArgs{}, fmt.Errorf("birth date is missing, expected DD.MM.YYYY")
	}
	return out, nil
}

func GetHelpText() string {
	return `Available commands:

Roster:
• /add Name DD.MM.YYYY [@username] — add a person
• /remove <id or name> — remove a person
• /list — show everyone
• /find <text> — search by name

Birthdays:
• /today — who celebrates today
• /stats — birthdays per month

Only admins can add or remove people.`
}
