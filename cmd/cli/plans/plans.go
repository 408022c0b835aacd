package plans

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/crucial707/studdy/cmd/cli/config"
	"github.com/crucial707/studdy/cmd/cli/output"
	"github.com/crucial707/studdy/cmd/cli/root"
	"github.com/crucial707/studdy/internal/models"
	"github.com/spf13/cobra"
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	plansCmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage study plans",
		Long:  "Create study plans and list a user's plan history.",
	}

	plansCmd.AddCommand(createPlanCmd(), listPlansCmd())
	root.GetRoot().AddCommand(plansCmd)
}

// ==========================
// Create Study Plan
// ==========================
func createPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a study plan",
		Long:  "Submit a subject and weekly hour budget; the API returns recommended resources.",
		RunE:  runCreate,
	}
	cmd.Flags().Int("user-id", 0, "id of the user the plan belongs to")
	cmd.Flags().String("subject", "", "subject to study (e.g. math, programming)")
	cmd.Flags().Float64("hours", 0, "hours per week to spend")
	cmd.Flags().Bool("json", false, "output raw JSON instead of a table")
	_ = cmd.MarkFlagRequired("user-id")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("hours")
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	userID, _ := cmd.Flags().GetInt("user-id")
	subject, _ := cmd.Flags().GetString("subject")
	hours, _ := cmd.Flags().GetFloat64("hours")
	asJSON, _ := cmd.Flags().GetBool("json")

	payload := map[string]interface{}{
		"user_id":        userID,
		"subject":        subject,
		"hours_per_week": hours,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(config.APIURL()+"/api/studyplan/", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error: %s", string(b))
	}

	var plan models.StudyPlan
	if err := json.NewDecoder(resp.Body).Decode(&plan); err != nil {
		return err
	}

	if asJSON {
		out, _ := json.MarshalIndent(plan, "", "  ")
		fmt.Println(string(out))
		return nil
	}

	output.RenderTable(
		[]string{"ID", "Subject", "Hours/Week", "Recommended Resources"},
		[][]interface{}{{plan.ID, plan.Subject, plan.HoursPerWeek, plan.RecommendedResources}},
	)
	return nil
}

// ==========================
// List Study Plans
// ==========================
func listPlansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <user-id>",
		Short: "List a user's study plans",
		Long:  "List all study plans for the given user id. An unknown user yields an empty list.",
		Args:  cobra.ExactArgs(1),
		RunE:  runList,
	}
	cmd.Flags().Bool("json", false, "output raw JSON instead of a table")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	userID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("user-id must be an integer: %q", args[0])
	}
	asJSON, _ := cmd.Flags().GetBool("json")

	resp, err := http.Get(fmt.Sprintf("%s/api/studyplans/%d", config.APIURL(), userID))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error: %s", string(b))
	}

	var plans []models.StudyPlan
	if err := json.NewDecoder(resp.Body).Decode(&plans); err != nil {
		return err
	}

	if asJSON {
		out, _ := json.MarshalIndent(plans, "", "  ")
		fmt.Println(string(out))
		return nil
	}

	rows := make([][]interface{}, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []interface{}{
			p.ID, p.Subject, p.HoursPerWeek, p.RecommendedResources, p.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	output.RenderTable(
		[]string{"ID", "Subject", "Hours/Week", "Recommended Resources", "Created"},
		rows,
	)
	return nil
}
