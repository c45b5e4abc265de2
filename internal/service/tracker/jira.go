package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/plan2code/backend/config"
	"github.com/plan2code/backend/internal/service/devtasks"
	"k8s.io/klog/v2"
)

// JiraClient 外部工单系统客户端
type JiraClient struct {
	BaseURL    string
	Email      string
	APIToken   string
	ProjectKey string
	Client     *http.Client
}

// NewJiraClient 创建 Jira 客户端
func NewJiraClient(cfg *config.Config) *JiraClient {
	return &JiraClient{
		BaseURL:    cfg.Jira.BaseURL,
		Email:      cfg.Jira.Email,
		APIToken:   cfg.Jira.APIToken,
		ProjectKey: cfg.Jira.ProjectKey,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// adfDocument Atlassian Document Format 的最小描述体
type adfDocument struct {
	Type    string    `json:"type"`
	Version int       `json:"version"`
	Content []adfNode `json:"content"`
}

type adfNode struct {
	Type    string    `json:"type"`
	Content []adfText `json:"content,omitempty"`
	Text    string    `json:"text,omitempty"`
}

type adfText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type issueFields struct {
	Project     map[string]string `json:"project"`
	Summary     string            `json:"summary"`
	Description adfDocument       `json:"description"`
	IssueType   map[string]string `json:"issuetype"`
}

type createIssueRequest struct {
	Fields issueFields `json:"fields"`
}

type createIssueResponse struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

// CreateIssue 在外部工单系统中创建一条工单
// 返回工单 Key 和浏览地址；非 201 响应作为该条的失败返回
func (c *JiraClient) CreateIssue(ctx context.Context, ticket devtasks.TicketCandidate) (string, string, error) {
	payload := createIssueRequest{
		Fields: issueFields{
			Project: map[string]string{"key": c.ProjectKey},
			Summary: ticket.Summary,
			Description: adfDocument{
				Type:    "doc",
				Version: 1,
				Content: []adfNode{
					{
						Type:    "paragraph",
						Content: []adfText{{Type: "text", Text: ticket.Description}},
					},
				},
			},
			IssueType: map[string]string{"name": "Task"},
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal issue payload: %w", err)
	}

	url := c.BaseURL + "/rest/api/3/issue"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.Email, c.APIToken)

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		klog.Warningf("创建工单失败: status=%d, body=%s", resp.StatusCode, string(body))
		return "", "", fmt.Errorf("issue creation failed: %s", string(body))
	}

	var issue createIssueResponse
	if err := json.Unmarshal(body, &issue); err != nil {
		return "", "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	browseURL := fmt.Sprintf("%s/browse/%s", c.BaseURL, issue.Key)
	return issue.Key, browseURL, nil
}
