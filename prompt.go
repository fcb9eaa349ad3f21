package renamer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
)

type inputValues struct {
	Location string
	Find     string
	Replace  string
}

// prompter drives the line-oriented interactive flow: gathering missing
// inputs, the plan confirmation and the approve-each questions.
type prompter struct {
	in *bufio.Reader
}

func newPrompter(r io.Reader) *prompter {
	return &prompter{in: bufio.NewReader(r)}
}

func (p *prompter) ask(label, def string) string {
	if def != "" {
		fmt.Printf("%s [%s]: ", label, def)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, _ := p.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

// gather prompts for location, find and replace (pre-filling previous
// values), shows the plan and loops on "c" to change inputs. The returned
// answer is "y", "a" or "n".
func (p *prompter) gather(prev inputValues, plan func(inputValues) string) (inputValues, string) {
	for {
		var v inputValues
		v.Location = p.ask("Enter drive/folder to search (e.g., /data, ./projects)", p.locationDefault(prev.Location))
		v.Find = stripQuotes(p.ask("Enter FIND term", prev.Find))
		v.Replace = stripQuotes(p.ask("Enter REPLACE-WITH term (leave empty to remove)", prev.Replace))

		ans := p.confirm(plan(v))
		if ans == "c" {
			prev = v
			continue
		}
		return v, ans
	}
}

// locationDefault falls back to the clipboard when no previous value exists
// and the clipboard holds the name of an existing directory.
func (p *prompter) locationDefault(prev string) string {
	if prev != "" {
		return prev
	}
	c, err := clipboard.ReadAll()
	if err != nil {
		return ""
	}
	c = strings.TrimSpace(c)
	if info, err := os.Stat(c); err == nil && info.IsDir() {
		return c
	}
	return ""
}

// confirm prints the plan and asks until one of y/n/a/c is given.
func (p *prompter) confirm(plan string) string {
	fmt.Print(plan)
	for {
		switch strings.ToLower(p.ask("Proceed? [y/n/a/c]", "")) {
		case "y", "yes":
			return "y"
		case "n", "no":
			return "n"
		case "a":
			return "a"
		case "c":
			return "c"
		default:
			fmt.Println("Please answer with y, n, a, or c.")
		}
	}
}

// entryConfirm returns the approve-each hook: one y/n/q question per
// proposed rename. "q" rejects everything from there on.
func (p *prompter) entryConfirm(root string) ConfirmFunc {
	return func(prop Proposal) Decision {
		rel := prop.Src
		if r, err := filepath.Rel(root, prop.Src); err == nil {
			rel = r
		}
		fmt.Printf("[%d] %s\n  -> %s\n", prop.Seq, rel, filepath.Base(prop.Dst))
		for {
			switch strings.ToLower(p.ask("Rename this item? [y/n/q]", "")) {
			case "y", "yes":
				return DecisionAccept
			case "n", "no":
				return DecisionReject
			case "q":
				fmt.Println("Stopping approvals early.")
				return DecisionRejectAll
			default:
				fmt.Println("Please answer y, n, or q.")
			}
		}
	}
}

// stripQuotes removes one pair of surrounding single or double quotes.
func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
