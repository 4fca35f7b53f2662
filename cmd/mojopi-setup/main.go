package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultServerURL = "http://localhost:3536"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringEmail step = iota
	stepEnteringUsername
	stepEnteringPassword
	stepConfirmingPassword
	stepRegistering
	stepComplete
)

type model struct {
	step         step
	serverURL    string
	email        string
	username     string
	password     string
	confirm      string
	currentInput string
	message      string
	quitting     bool
}

type registerSuccessMsg struct {
	username string
}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	serverURL := os.Getenv("MOJOPI_URL")
	if serverURL == "" {
		serverURL = defaultServerURL
	}
	return model{
		step:      stepEnteringEmail,
		serverURL: strings.TrimRight(serverURL, "/"),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func registerAccount(serverURL, email, username, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"email":    email,
			"username": username,
			"password": password,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL+"/register", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("could not reach %s - is the server running?", serverURL)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			var body struct {
				Error string `json:"error"`
			}
			_ = json.NewDecoder(resp.Body).Decode(&body)
			if body.Error != "" {
				return errMsg{fmt.Errorf("registration failed: %s", body.Error)}
			}
			return errMsg{fmt.Errorf("registration failed with status %d", resp.StatusCode)}
		}

		return registerSuccessMsg{username: username}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			return m.submitInput()

		case tea.KeyBackspace:
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}
			return m, nil

		case tea.KeyRunes, tea.KeySpace:
			m.currentInput += string(msg.Runes)
			return m, nil
		}

	case registerSuccessMsg:
		m.step = stepComplete
		m.message = fmt.Sprintf("Account %q created. You are ready to publish rings.", msg.username)
		return m, nil

	case errMsg:
		m.message = msg.Error()
		m.step = stepEnteringEmail
		m.currentInput = m.email
		return m, nil
	}

	return m, nil
}

func (m model) submitInput() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.currentInput)

	switch m.step {
	case stepEnteringEmail:
		if value == "" {
			m.message = "Email cannot be empty."
			return m, nil
		}
		m.email = value
		m.currentInput = ""
		m.message = ""
		m.step = stepEnteringUsername
		return m, nil

	case stepEnteringUsername:
		if value == "" {
			m.message = "Username cannot be empty."
			return m, nil
		}
		m.username = value
		m.currentInput = ""
		m.message = ""
		m.step = stepEnteringPassword
		return m, nil

	case stepEnteringPassword:
		if value == "" {
			m.message = "Password cannot be empty."
			return m, nil
		}
		m.password = value
		m.currentInput = ""
		m.message = ""
		m.step = stepConfirmingPassword
		return m, nil

	case stepConfirmingPassword:
		if value != m.password {
			m.message = "Passwords do not match."
			m.currentInput = ""
			m.step = stepEnteringPassword
			return m, nil
		}
		m.confirm = value
		m.currentInput = ""
		m.message = ""
		m.step = stepRegistering
		return m, registerAccount(m.serverURL, m.email, m.username, m.password)

	case stepComplete:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("mojopi setup"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Server: %s\n\n", m.serverURL))

	if m.message != "" {
		style := errorStyle
		if m.step == stepComplete {
			style = successStyle
		}
		b.WriteString(style.Render(m.message))
		b.WriteString("\n\n")
	}

	switch m.step {
	case stepEnteringEmail:
		b.WriteString(promptStyle.Render("Email: "))
		b.WriteString(inputStyle.Render(m.currentInput))
	case stepEnteringUsername:
		b.WriteString(promptStyle.Render("Username: "))
		b.WriteString(inputStyle.Render(m.currentInput))
	case stepEnteringPassword:
		b.WriteString(promptStyle.Render("Password: "))
		b.WriteString(inputStyle.Render(strings.Repeat("*", len(m.currentInput))))
	case stepConfirmingPassword:
		b.WriteString(promptStyle.Render("Confirm password: "))
		b.WriteString(inputStyle.Render(strings.Repeat("*", len(m.currentInput))))
	case stepRegistering:
		b.WriteString("Registering account...")
	case stepComplete:
		b.WriteString("Press Enter to exit.")
	}

	b.WriteString("\n\n(esc to quit)\n")
	return b.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
