package menu

import (
	"strconv"
	"strings"
)

// Action is one numbered entry of the main menu
type Action int

// ActionInvalid stands for input that names no menu entry
const ActionInvalid Action = -1

const (
	ActionExit Action = iota
	ActionList
	ActionListDetailed
	ActionChangeDirectory
	ActionShowPath
	ActionCreateDirectory
	ActionCreateFile
	ActionDelete
	ActionCopy
	ActionMove
	ActionSearch
	ActionInfo
	ActionChmod
)

var labels = map[Action]string{
	ActionExit:            "Exit",
	ActionList:            "List files (simple)",
	ActionListDetailed:    "List files (detailed)",
	ActionChangeDirectory: "Change directory",
	ActionShowPath:        "Show current path",
	ActionCreateDirectory: "Create directory",
	ActionCreateFile:      "Create file",
	ActionDelete:          "Delete file/directory",
	ActionCopy:            "Copy file",
	ActionMove:            "Move/Rename file",
	ActionSearch:          "Search files",
	ActionInfo:            "View file information",
	ActionChmod:           "Change permissions",
}

type section struct {
	title   string
	actions []Action
}

var sections = []section{
	{title: "Navigation & Listing", actions: []Action{ActionList, ActionListDetailed, ActionChangeDirectory, ActionShowPath}},
	{title: "File/Directory Operations", actions: []Action{ActionCreateDirectory, ActionCreateFile, ActionDelete, ActionCopy, ActionMove}},
	{title: "Search & Information", actions: []Action{ActionSearch, ActionInfo}},
	{title: "Permissions", actions: []Action{ActionChmod}},
	{title: "Other", actions: []Action{ActionExit}},
}

// Label returns the menu text of the action
func (a Action) Label() string {
	if l, ok := labels[a]; ok {
		return l
	}
	return "Invalid"
}

// ParseAction converts user input into an Action. Anything that is not a
// number between 0 and 12 yields ActionInvalid.
func ParseAction(s string) Action {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return ActionInvalid
	}
	a := Action(n)
	if _, ok := labels[a]; !ok {
		return ActionInvalid
	}
	return a
}
