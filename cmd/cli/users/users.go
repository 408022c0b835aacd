package users

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

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
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
		Long:  "Register users against the Studdy API.",
	}

	usersCmd.AddCommand(registerUserCmd())
	root.GetRoot().AddCommand(usersCmd)
}

// ==========================
// Register User
// ==========================
func registerUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user",
		Long:  "Register a new user with username and email. The email must not be registered already.",
		RunE:  runRegister,
	}
	cmd.Flags().String("username", "", "username for the new user")
	cmd.Flags().String("email", "", "email address (unique across users)")
	cmd.Flags().Bool("json", false, "output raw JSON instead of a table")
	return cmd
}

func runRegister(cmd *cobra.Command, args []string) error {
	username, _ := cmd.Flags().GetString("username")
	email, _ := cmd.Flags().GetString("email")
	asJSON, _ := cmd.Flags().GetBool("json")

	if username == "" {
		fmt.Print("Username: ")
		fmt.Scanln(&username)
	}
	if email == "" {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
	}

	payload := map[string]string{
		"username": username,
		"email":    email,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(config.APIURL()+"/api/users/", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error: %s", string(b))
	}

	var user models.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return err
	}

	if asJSON {
		out, _ := json.MarshalIndent(user, "", "  ")
		fmt.Println(string(out))
		return nil
	}

	output.RenderTable(
		[]string{"ID", "Username", "Email", "Created"},
		[][]interface{}{{user.ID, user.Username, user.Email, user.CreatedAt.Format("2006-01-02 15:04")}},
	)
	return nil
}
