// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
)

const shellHelp = `Type text to translate it with the current language pair.
Commands:
  :from <code>   set the source language
  :to <code>     set the target language
  :swap          swap source and target
  :langs         list supported languages
  :history       list this session's translations
  :rm <id>       remove a history entry
  :clear         clear the history
  :theme         toggle light/dark theme
  :autocopy      toggle copying results to the clipboard
  :help          show this help
  :quit          leave the shell
`

// Shell reads lines from in until EOF or :quit. History and settings
// live for the duration of the session.
func (a *App) Shell(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	a.printf("lingo shell, %s. Type :help for commands.\n", a.settings.ServiceName())
	a.prompt()

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == ":quit" || line == ":q" {
			return nil
		}
		if err := a.handleLine(ctx, line); err != nil {
			a.printf("error: %s\n", UserMessage(err))
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		a.prompt()
	}
	return scanner.Err()
}

func (a *App) prompt() {
	a.printf("[%s -> %s] > ", a.pair.Source(), a.pair.Target())
}

func (a *App) handleLine(ctx context.Context, line string) error {
	if line == "" {
		return nil
	}
	if !strings.HasPrefix(line, ":") {
		return a.Translate(ctx, line, "", "", "")
	}

	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case ":from":
		return a.SetLanguages(ctx, arg, "")
	case ":to":
		return a.SetLanguages(ctx, "", arg)
	case ":swap":
		return a.SwapLanguages(ctx)
	case ":langs":
		a.ListLanguages()
	case ":history":
		a.PrintHistory()
	case ":rm":
		return a.RemoveHistory(arg)
	case ":clear":
		a.history.Clear()
		a.printf("history cleared\n")
	case ":theme":
		a.printf("theme: %s\n", a.settings.ToggleTheme())
	case ":autocopy":
		a.settings.SetAutoCopy(!a.settings.AutoCopy())
		a.printf("auto-copy: %t\n", a.settings.AutoCopy())
	case ":help":
		a.printf("%s", shellHelp)
	default:
		a.printf("unknown command %s, type :help\n", cmd)
	}
	return nil
}
