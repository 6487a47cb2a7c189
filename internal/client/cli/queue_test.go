package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fieldops/internal/client/mutation"
	"github.com/iudanet/fieldops/internal/models"
)

func TestAddOptions_request(t *testing.T) {
	bodyFile := filepath.Join(t.TempDir(), "body.json")
	require.NoError(t, os.WriteFile(bodyFile, []byte(`{"from":"file"}`), 0o600))

	tests := []struct {
		name    string
		opts    addOptions
		want    *models.MutationRequest
		wantErr string
	}{
		{
			name: "defaults label and uppercases method",
			opts: addOptions{Method: "patch", URL: "/api/needs/9", Body: `{"qty":3}`,
				Headers: []string{"X-Device: tab-7", "Content-Type:application/json"}},
			want: &models.MutationRequest{
				Method:  "PATCH",
				URL:     "/api/needs/9",
				Label:   "PATCH /api/needs/9",
				Body:    []byte(`{"qty":3}`),
				Headers: map[string]string{"X-Device": "tab-7", "Content-Type": "application/json"},
			},
		},
		{
			name: "body from file",
			opts: addOptions{Method: "POST", URL: "/api/x", Label: "x", BodyFile: bodyFile},
			want: &models.MutationRequest{
				Method:  "POST",
				URL:     "/api/x",
				Label:   "x",
				Body:    []byte(`{"from":"file"}`),
				Headers: map[string]string{},
			},
		},
		{
			name:    "body and body file",
			opts:    addOptions{Method: "POST", URL: "/api/x", Body: "a", BodyFile: bodyFile},
			wantErr: "either --body or --body-file",
		},
		{
			name:    "missing body file",
			opts:    addOptions{Method: "POST", URL: "/api/x", BodyFile: filepath.Join(t.TempDir(), "nope")},
			wantErr: "failed to read body file",
		},
		{
			name:    "malformed header",
			opts:    addOptions{Method: "POST", URL: "/api/x", Headers: []string{"NoColon"}},
			wantErr: `invalid header "NoColon"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.request()
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCli_runQueueAdd(t *testing.T) {
	tests := []struct {
		name       string
		opts       addOptions
		submit     *mutation.SubmitResult
		submitErr  error
		wantOutput string
		wantErr    string
		wantSubmit int
		wantQueue  int
	}{
		{
			name:       "delivered",
			opts:       addOptions{Method: "POST", URL: "/api/tasks/1", Label: "verify task 1"},
			submit:     &mutation.SubmitResult{},
			wantOutput: "✓ Delivered: verify task 1",
			wantSubmit: 1,
		},
		{
			name:       "queued on network failure",
			opts:       addOptions{Method: "POST", URL: "/api/tasks/1", Label: "verify task 1"},
			submit:     &mutation.SubmitResult{ID: 5, Queued: true},
			wantOutput: "queued as entry 5: verify task 1",
			wantSubmit: 1,
		},
		{
			name:       "rejected",
			opts:       addOptions{Method: "POST", URL: "/api/tasks/1"},
			submitErr:  errors.New("mutation rejected: server error (400): bad"),
			wantErr:    "mutation rejected",
			wantSubmit: 1,
		},
		{
			name:       "queue only",
			opts:       addOptions{Method: "DELETE", URL: "/api/needs/2", QueueOnly: true},
			wantOutput: "✓ Queued as entry 9: DELETE /api/needs/2",
			wantQueue:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIO, out := newRecordingIO()
			queue := &QueueServiceMock{
				SubmitFunc: func(ctx context.Context, req *models.MutationRequest) (*mutation.SubmitResult, error) {
					return tt.submit, tt.submitErr
				},
				EnqueueFunc: func(ctx context.Context, req *models.MutationRequest) (uint64, error) {
					return 9, nil
				},
			}
			c := newTestCli(mockIO, queue, true)

			err := c.runQueueAdd(context.Background(), tt.opts)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Contains(t, out.String(), tt.wantOutput)
			}
			assert.Len(t, queue.SubmitCalls(), tt.wantSubmit)
			assert.Len(t, queue.EnqueueCalls(), tt.wantQueue)
		})
	}
}

func TestCli_runQueueDrain(t *testing.T) {
	t.Run("offline does not drain", func(t *testing.T) {
		mockIO, out := newRecordingIO()
		queue := &QueueServiceMock{
			PendingCountFunc: func(ctx context.Context) int { return 3 },
			FailedCountFunc:  func(ctx context.Context) int { return 1 },
		}
		c := newTestCli(mockIO, queue, false)

		require.NoError(t, c.runQueueDrain(context.Background()))
		assert.Empty(t, queue.DrainCalls())
		assert.Contains(t, out.String(), "Backend is offline")
		assert.Contains(t, out.String(), "Pending: 3, failed: 1")
	})

	t.Run("all synced", func(t *testing.T) {
		mockIO, out := newRecordingIO()
		queue := &QueueServiceMock{
			DrainFunc: func(ctx context.Context) (*mutation.DrainResult, error) {
				return &mutation.DrainResult{Synced: 4}, nil
			},
		}
		c := newTestCli(mockIO, queue, true)

		require.NoError(t, c.runQueueDrain(context.Background()))
		assert.Contains(t, out.String(), "Synced:    4")
		assert.Contains(t, out.String(), "✓ Queue is empty")
	})

	t.Run("failures are listed", func(t *testing.T) {
		mockIO, out := newRecordingIO()
		queue := &QueueServiceMock{
			DrainFunc: func(ctx context.Context) (*mutation.DrainResult, error) {
				return &mutation.DrainResult{
					Synced:    2,
					Failed:    1,
					Discarded: 1,
					Errors: []*mutation.EntryError{
						{ID: 2, Label: "verify task 2", Err: errors.New("server error (500): down")},
					},
				}, nil
			},
		}
		c := newTestCli(mockIO, queue, true)

		require.NoError(t, c.runQueueDrain(context.Background()))
		assert.Contains(t, out.String(), "Discarded: 1")
		assert.Contains(t, out.String(), "✗ entry 2 (verify task 2): server error (500): down")
		assert.NotContains(t, out.String(), "Queue is empty")
	})

	t.Run("drain error", func(t *testing.T) {
		mockIO, _ := newRecordingIO()
		queue := &QueueServiceMock{
			DrainFunc: func(ctx context.Context) (*mutation.DrainResult, error) {
				return nil, errors.New("storage closed")
			},
		}
		c := newTestCli(mockIO, queue, true)

		assert.ErrorContains(t, c.runQueueDrain(context.Background()), "drain failed: storage closed")
	})
}

func TestCli_runQueueRetry(t *testing.T) {
	mockIO, out := newRecordingIO()
	var retryErr error
	queue := &QueueServiceMock{
		RetryOneFunc: func(ctx context.Context, id uint64) error { return retryErr },
	}
	c := newTestCli(mockIO, queue, true)

	require.NoError(t, c.runQueueRetry(context.Background(), 3))
	assert.Contains(t, out.String(), "✓ Entry 3 replayed")

	retryErr = mutation.ErrOffline
	require.NoError(t, c.runQueueRetry(context.Background(), 3))
	assert.Contains(t, out.String(), "entry 3 left in queue")

	retryErr = errors.New("replay entry 3: server error (409): conflict")
	assert.ErrorContains(t, c.runQueueRetry(context.Background(), 3), "conflict")
}

func TestCli_runQueueDiscard(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		mockIO, out := newRecordingIO()
		queue := &QueueServiceMock{}
		c := newTestCli(mockIO, queue, true)

		require.NoError(t, c.runQueueDiscard(context.Background(), 4, false))
		assert.Len(t, mockIO.ConfirmCalls(), 1)
		assert.Empty(t, queue.DiscardCalls())
		assert.Contains(t, out.String(), "Cancelled.")
	})

	t.Run("confirmed", func(t *testing.T) {
		mockIO, out := newRecordingIO()
		mockIO.ConfirmFunc = func(prompt string) (bool, error) { return true, nil }
		queue := &QueueServiceMock{
			DiscardFunc: func(ctx context.Context, id uint64) error { return nil },
		}
		c := newTestCli(mockIO, queue, true)

		require.NoError(t, c.runQueueDiscard(context.Background(), 4, false))
		require.Len(t, queue.DiscardCalls(), 1)
		assert.Equal(t, uint64(4), queue.DiscardCalls()[0].Id)
		assert.Contains(t, out.String(), "✓ Entry 4 discarded")
	})

	t.Run("forced", func(t *testing.T) {
		mockIO, _ := newRecordingIO()
		queue := &QueueServiceMock{
			DiscardFunc: func(ctx context.Context, id uint64) error { return nil },
		}
		c := newTestCli(mockIO, queue, true)

		require.NoError(t, c.runQueueDiscard(context.Background(), 4, true))
		assert.Empty(t, mockIO.ConfirmCalls())
		assert.Len(t, queue.DiscardCalls(), 1)
	})
}

func TestCli_runQueueList(t *testing.T) {
	created := time.Date(2026, 7, 14, 9, 0, 0, 0, time.UTC)
	mockIO, out := newRecordingIO()
	queue := &QueueServiceMock{
		ListFunc: func(ctx context.Context) ([]*models.QueueEntry, error) {
			return []*models.QueueEntry{
				{ID: 1, Label: "verify task 1", Method: "POST", URL: "/api/tasks/1", CreatedAt: created, Status: models.QueueStatusPending},
				{ID: 2, Label: "close need 9", Method: "DELETE", URL: "/api/needs/9", CreatedAt: created,
					Status: models.QueueStatusFailed, Retries: 2, LastError: "server error (500): down"},
			}, nil
		},
	}
	c := newTestCli(mockIO, queue, true)

	require.NoError(t, c.runQueueList(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Found 2 entries")
	assert.Contains(t, s, "1. verify task 1")
	assert.Contains(t, s, "Status:  pending")
	assert.Contains(t, s, "Status:  failed after 2 attempts")
	assert.Contains(t, s, "Error:   server error (500): down")
	assert.Less(t, strings.Index(s, "1. verify"), strings.Index(s, "2. close"))
}

func TestCli_runQueueList_Error(t *testing.T) {
	mockIO, _ := newRecordingIO()
	queue := &QueueServiceMock{
		ListFunc: func(ctx context.Context) ([]*models.QueueEntry, error) {
			return nil, errors.New("disk gone")
		},
	}
	c := newTestCli(mockIO, queue, true)

	assert.ErrorContains(t, c.runQueueList(context.Background()), "failed to list queue: disk gone")
}

func TestCli_runQueueStatus(t *testing.T) {
	last := time.Date(2026, 7, 14, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		online  bool
		pending int
		failed  int
		last    time.Time
		lastErr error
		want    []string
	}{
		{
			name:   "clean",
			online: true,
			want:   []string{"Backend: online", "Last drain: never", "✓ All mutations delivered"},
		},
		{
			name:    "pending offline",
			pending: 3,
			last:    last,
			want:    []string{"Backend: offline", "Pending: 3", "Last drain: " + last.Local().Format(time.RFC3339), "queue drain"},
		},
		{
			name:    "failed entries",
			online:  true,
			failed:  2,
			lastErr: errors.New("meta broken"),
			want:    []string{"Failed:  2", "Last drain: unknown (meta broken)", "2 mutation(s) need a decision"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIO, out := newRecordingIO()
			queue := &QueueServiceMock{
				PendingCountFunc: func(ctx context.Context) int { return tt.pending },
				FailedCountFunc:  func(ctx context.Context) int { return tt.failed },
				LastDrainFunc: func(ctx context.Context) (time.Time, error) {
					return tt.last, tt.lastErr
				},
			}
			c := newTestCli(mockIO, queue, tt.online)

			require.NoError(t, c.runQueueStatus(context.Background()))
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}
