package store

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

const creatorID = "123e4567-e89b-12d3-a456-426614174000"
const buyerID = "abc12345-e89b-12d3-a456-426614174000"
const itemID = "def12345-e89b-12d3-a456-426614174000"

func itemRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "creator_id", "name", "description", "price", "created_at"}).
		AddRow(itemID, creatorID, "Signed print", "A3 print, signed", 25.0, time.Now())
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestCreateItem_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "store_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(itemID))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/store/items", func(c *gin.Context) {
		c.Set("user_id", creatorID)
		CreateItem(c)
	})

	body, _ := json.Marshal(models.StoreItemCreate{
		Name:        "Signed print",
		Description: "A3 print, signed",
		Price:       floatPtr(25.0),
	})
	req, _ := http.NewRequest(http.MethodPost, "/store/items", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var item models.StoreItem
	json.Unmarshal(resp.Body.Bytes(), &item)
	assert.Equal(t, "Signed print", item.Name)
	assert.Equal(t, 25.0, item.Price)
}

func TestCreateItem_NegativePrice(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/store/items", func(c *gin.Context) {
		c.Set("user_id", creatorID)
		CreateItem(c)
	})

	body, _ := json.Marshal(models.StoreItemCreate{
		Name:  "Signed print",
		Price: floatPtr(-5.0),
	})
	req, _ := http.NewRequest(http.MethodPost, "/store/items", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "Price")
}

func TestCreateItem_MissingPrice(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/store/items", func(c *gin.Context) {
		c.Set("user_id", creatorID)
		CreateItem(c)
	})

	body := []byte(`{"name": "Signed print"}`)
	req, _ := http.NewRequest(http.MethodPost, "/store/items", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestPlaceOrder_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "store_items" WHERE id = \$1`).
		WillReturnRows(itemRows())

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("order-1"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/store/orders", func(c *gin.Context) {
		c.Set("user_id", buyerID)
		PlaceOrder(c)
	})

	body, _ := json.Marshal(models.OrderCreate{ItemID: itemID})
	req, _ := http.NewRequest(http.MethodPost, "/store/orders", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var order models.Order
	json.Unmarshal(resp.Body.Bytes(), &order)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, buyerID, order.BuyerID)
}

func TestPlaceOrder_ItemNotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "store_items" WHERE id = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.POST("/store/orders", func(c *gin.Context) {
		c.Set("user_id", buyerID)
		PlaceOrder(c)
	})

	body, _ := json.Marshal(models.OrderCreate{ItemID: "unknown-item"})
	req, _ := http.NewRequest(http.MethodPost, "/store/orders", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestPlaceOrder_SelfPurchase(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "store_items" WHERE id = \$1`).
		WillReturnRows(itemRows())

	r := testutils.SetupTestRouter()
	r.POST("/store/orders", func(c *gin.Context) {
		c.Set("user_id", creatorID)
		PlaceOrder(c)
	})

	body, _ := json.Marshal(models.OrderCreate{ItemID: itemID})
	req, _ := http.NewRequest(http.MethodPost, "/store/orders", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "your own item")
}

func TestGetBuyerOrders_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "item_id", "buyer_id", "status"}).
		AddRow("order-1", itemID, buyerID, "PENDING")

	mock.ExpectQuery(`SELECT (.+) FROM "orders" WHERE buyer_id = \$1`).
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	r.GET("/store/orders", func(c *gin.Context) {
		c.Set("user_id", buyerID)
		GetBuyerOrders(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/store/orders", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var orders []models.Order
	json.Unmarshal(resp.Body.Bytes(), &orders)
	assert.Len(t, orders, 1)
	assert.Equal(t, models.OrderPending, orders[0].Status)
}
