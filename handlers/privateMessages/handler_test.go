package privateMessages

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/i7even3/fansnap/models"
	"github.com/i7even3/fansnap/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

const senderID = "123e4567-e89b-12d3-a456-426614174000"
const recipientID = "abc12345-e89b-12d3-a456-426614174000"

func TestSendMessage_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name"}).
			AddRow(recipientID, "bo"))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "private_messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("msg-1"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/private-messages", func(c *gin.Context) {
		c.Set("user_id", senderID)
		SendMessage(c)
	})

	body, _ := json.Marshal(models.PrivateMessageCreate{
		RecipientID: recipientID,
		Content:     "hey there",
	})
	req, _ := http.NewRequest(http.MethodPost, "/private-messages", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var message models.PrivateMessage
	json.Unmarshal(resp.Body.Bytes(), &message)
	assert.Equal(t, senderID, message.SenderID)
	assert.Equal(t, "hey there", message.Content)
}

func TestSendMessage_RecipientNotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.POST("/private-messages", func(c *gin.Context) {
		c.Set("user_id", senderID)
		SendMessage(c)
	})

	body, _ := json.Marshal(models.PrivateMessageCreate{
		RecipientID: "unknown-user",
		Content:     "hey there",
	})
	req, _ := http.NewRequest(http.MethodPost, "/private-messages", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

// Self-messages are rejected only when strict validation is on
func TestSendMessage_SelfMessageStrict(t *testing.T) {
	t.Setenv("STRICT_VALIDATION", "true")

	r := testutils.SetupTestRouter()
	r.POST("/private-messages", func(c *gin.Context) {
		c.Set("user_id", senderID)
		SendMessage(c)
	})

	body, _ := json.Marshal(models.PrivateMessageCreate{
		RecipientID: senderID,
		Content:     "note to self",
	})
	req, _ := http.NewRequest(http.MethodPost, "/private-messages", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSendMessage_SelfMessagePermissive(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name"}).
			AddRow(senderID, "ana"))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "private_messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("msg-1"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/private-messages", func(c *gin.Context) {
		c.Set("user_id", senderID)
		SendMessage(c)
	})

	body, _ := json.Marshal(models.PrivateMessageCreate{
		RecipientID: senderID,
		Content:     "note to self",
	})
	req, _ := http.NewRequest(http.MethodPost, "/private-messages", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestGetConversations_DistinctPartners(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	createdAt := time.Now()
	messageRows := sqlmock.NewRows([]string{"id", "sender_id", "recipient_id", "content", "created_at"}).
		AddRow("msg-1", senderID, recipientID, "hi", createdAt).
		AddRow("msg-2", recipientID, senderID, "hello", createdAt.Add(time.Minute)).
		AddRow("msg-3", senderID, recipientID, "how are you", createdAt.Add(2*time.Minute))

	mock.ExpectQuery(`SELECT (.+) FROM "private_messages" WHERE sender_id = \$1 OR recipient_id = \$2`).
		WillReturnRows(messageRows)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name"}).
			AddRow(recipientID, "bo"))

	r := testutils.SetupTestRouter()
	r.GET("/private-messages/conversations", func(c *gin.Context) {
		c.Set("user_id", senderID)
		GetConversations(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/private-messages/conversations", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var partners []models.User
	json.Unmarshal(resp.Body.Bytes(), &partners)
	assert.Len(t, partners, 1)
	assert.Equal(t, "bo", partners[0].UserName)
}

func TestGetThread_OldestFirst(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	createdAt := time.Now()
	messageRows := sqlmock.NewRows([]string{"id", "sender_id", "recipient_id", "content", "created_at"}).
		AddRow("msg-1", senderID, recipientID, "first", createdAt).
		AddRow("msg-2", recipientID, senderID, "second", createdAt.Add(time.Minute))

	mock.ExpectQuery(`SELECT (.+) FROM "private_messages" WHERE \(sender_id = \$1 AND recipient_id = \$2\) OR \(sender_id = \$3 AND recipient_id = \$4\)`).
		WillReturnRows(messageRows)

	r := testutils.SetupTestRouter()
	r.GET("/private-messages/thread/:userId", func(c *gin.Context) {
		c.Set("user_id", senderID)
		GetThread(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/private-messages/thread/"+recipientID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var messages []models.PrivateMessage
	json.Unmarshal(resp.Body.Bytes(), &messages)
	assert.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "second", messages[1].Content)
}
