package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/models"
	http_client "github.com/dahiyakapil/task-tracker/backend/utils"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const DefaultBaseURL = "http://localhost:4000/api"

// BaseURLFromEnv reads TASKS_API_URL, falling back to DefaultBaseURL.
func BaseURLFromEnv() string {
	if v := strings.TrimSpace(os.Getenv("TASKS_API_URL")); v != "" {
		return v
	}
	return DefaultBaseURL
}

type TaskList struct {
	Tasks []models.Task
	Count int
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Count   int             `json:"count"`
	Errors  []string        `json:"errors"`
}

type rawResponse struct {
	status int
	body   []byte
}

// TaskClient calls the tasks REST API. Transport failures go through a
// circuit breaker; HTTP error statuses do not trip it.
type TaskClient struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	log        logrus.FieldLogger
}

func NewTaskClient(baseURL string, httpClient *http.Client, log logrus.FieldLogger) *TaskClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http_client.NewHTTPClient()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "TasksAPICB",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})

	return &TaskClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		breaker:    breaker,
		log:        log,
	}
}

func (c *TaskClient) ListTasks(ctx context.Context, filters models.TaskFilters) (*TaskList, error) {
	params := url.Values{}
	if filters.Status != "" {
		params.Set("status", filters.Status)
	}
	if filters.Priority != "" {
		params.Set("priority", filters.Priority)
	}
	if filters.SortBy != "" {
		params.Set("sortBy", filters.SortBy)
	}
	path := "/tasks"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	tasks := []models.Task{}
	if err := decodeData(env, &tasks); err != nil {
		return nil, err
	}
	return &TaskList{Tasks: tasks, Count: env.Count}, nil
}

func (c *TaskClient) GetTask(ctx context.Context, id string) (*models.Task, error) {
	env, err := c.do(ctx, http.MethodGet, "/tasks/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return decodeTask(env)
}

func (c *TaskClient) CreateTask(ctx context.Context, input models.TaskInput) (*models.Task, error) {
	env, err := c.do(ctx, http.MethodPost, "/tasks/create-task", input)
	if err != nil {
		return nil, err
	}
	return decodeTask(env)
}

// UpdateTask sends only the fields set in patch.
func (c *TaskClient) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	env, err := c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id), patch)
	if err != nil {
		return nil, err
	}
	return decodeTask(env)
}

func (c *TaskClient) DeleteTask(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil)
	return err
}

func (c *TaskClient) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		return &rawResponse{status: resp.StatusCode, body: data}, nil
	})
	if err != nil {
		c.log.Warnf("Event ID: TASKS_API_UNREACHABLE, Description: %s %s failed: %v", method, path, err)
		return nil, fmt.Errorf("%w: %s %s: %w", ErrNetwork, method, path, err)
	}

	raw := result.(*rawResponse)
	var env envelope
	decodeErr := json.Unmarshal(raw.body, &env)

	if raw.status < 200 || raw.status >= 300 {
		c.log.Debugf("Event ID: TASKS_API_ERROR, Description: %s %s responded %d: %s", method, path, raw.status, env.Message)
		return nil, &APIError{StatusCode: raw.status, Message: env.Message, Errors: env.Errors}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode %s %s response: %w", method, path, decodeErr)
	}
	return &env, nil
}

func decodeTask(env *envelope) (*models.Task, error) {
	var task models.Task
	if err := decodeData(env, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func decodeData(env *envelope, dst any) error {
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
