package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/psychmaster/psychmaster/internal/config"
	"github.com/psychmaster/psychmaster/internal/model/assessment"
	"github.com/psychmaster/psychmaster/internal/model/chat"
	"github.com/psychmaster/psychmaster/internal/source"
)

func reportCmd(cfg func() *config.ClientConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "End a session and print its wellbeing summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := cfg()
			if c.Source != config.SourceRemote {
				return errors.New("report needs the remote source")
			}
			sessionID, _ := cmd.Flags().GetString("session")
			if sessionID == "" {
				return errors.New("--session is required")
			}

			resp, err := source.NewRemote(c.BackendURL, httpClient(c)).EndSession(cmd.Context(), sessionID)
			if err != nil {
				return err
			}
			writeReport(cmd.OutOrStdout(), resp)
			return nil
		},
	}
	cmd.Flags().String("session", "", "session id to close")
	return cmd
}

func writeReport(w io.Writer, resp chat.EndSessionResponse) {
	fmt.Fprintf(w, "Session %s\n", resp.SessionID)
	if s := resp.Summary; s != nil {
		fmt.Fprintf(w, "Messages: %d (%d from you), started %s\n",
			s.TotalMessages, s.UserMessages, s.StartedAt.Format("2006-01-02 15:04"))
	}

	if a := resp.Analysis; a != nil {
		fmt.Fprintf(w, "\nAssessment: %s (confidence %.0f%%, risk %s)\n", a.PredictedState, a.Confidence*100, a.RiskLevel)
	}

	r := resp.Recommendations
	if r == nil {
		return
	}
	if r.PersonalizedMessage != "" {
		fmt.Fprintf(w, "\n%s\n", r.PersonalizedMessage)
	}
	if len(r.ImmediateActions) > 0 {
		fmt.Fprintln(w, "\nRight now:")
		for _, a := range r.ImmediateActions {
			fmt.Fprintf(w, "  - %s\n", a)
		}
	}

	sections := []struct {
		title string
		items []string
	}{
		{"Videos", resourceLines(r.Videos)},
		{"Articles", resourceLines(r.Articles)},
		{"Professional support", resourceLines(r.ProfessionalResources)},
		{"Next steps", r.FollowUpSuggestions},
	}
	for _, s := range sections {
		if len(s.items) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n  - %s\n", s.title, strings.Join(s.items, "\n  - "))
	}
}

func resourceLines(items []assessment.Resource) []string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, it.Title+" "+it.URL)
	}
	return lines
}
