// Package schedule renders ready-to-paste snippets for running the digest on
// a timer. It only templates text; nothing is installed.
package schedule

import (
	"fmt"
	"strings"
	"text/template"
)

// Options parameterizes snippet rendering.
type Options struct {
	Hour    int    // local hour of day, 0-23
	Command string // digest command to run
}

const launchdTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>com.ainews.digest</string>
	<key>ProgramArguments</key>
	<array>
		<string>/bin/sh</string>
		<string>-c</string>
		<string>{{.Command}}</string>
	</array>
	<key>StartCalendarInterval</key>
	<dict>
		<key>Hour</key>
		<integer>{{.Hour}}</integer>
		<key>Minute</key>
		<integer>0</integer>
	</dict>
	<key>StandardOutPath</key>
	<string>/tmp/ainews.log</string>
	<key>StandardErrorPath</key>
	<string>/tmp/ainews.err</string>
</dict>
</plist>
`

const actionsTemplate = `name: AI News Digest
on:
  schedule:
    - cron: "0 {{.Hour}} * * *"
  workflow_dispatch: {}
jobs:
  digest:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/setup-go@v5
        with:
          go-version: stable
      - run: go install github.com/tesso57/ainews/cmd/ainews@latest
      - run: {{.Command}}
        env:
          GITHUB_TOKEN: ${{"{{"}} secrets.GITHUB_TOKEN {{"}}"}}
`

// Cron returns a crontab line running the digest daily.
func Cron(opt Options) string {
	return fmt.Sprintf("0 %d * * * %s\n", opt.Hour, opt.Command)
}

// Launchd returns a macOS launchd plist for
// ~/Library/LaunchAgents/com.ainews.digest.plist.
func Launchd(opt Options) (string, error) {
	return renderTemplate("launchd", launchdTemplate, opt)
}

// WindowsTask returns a schtasks command registering a daily run.
func WindowsTask(opt Options) string {
	return fmt.Sprintf(`schtasks /Create /SC DAILY /TN "AI News Digest" /TR "%s" /ST %02d:00`+"\n", opt.Command, opt.Hour)
}

// GitHubActions returns a workflow file running the digest on a daily cron.
func GitHubActions(opt Options) (string, error) {
	return renderTemplate("actions", actionsTemplate, opt)
}

// Render dispatches on kind: cron, launchd, windows, or actions.
func Render(kind string, opt Options) (string, error) {
	if opt.Hour < 0 || opt.Hour > 23 {
		opt.Hour = 8
	}
	if strings.TrimSpace(opt.Command) == "" {
		opt.Command = "ainews --output=file"
	}
	switch kind {
	case "cron":
		return Cron(opt), nil
	case "launchd":
		return Launchd(opt)
	case "windows":
		return WindowsTask(opt), nil
	case "actions":
		return GitHubActions(opt)
	default:
		return "", fmt.Errorf("unknown schedule kind: %s (want cron, launchd, windows, or actions)", kind)
	}
}

func renderTemplate(name, text string, opt Options) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, opt); err != nil {
		return "", err
	}
	return b.String(), nil
}
