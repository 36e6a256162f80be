package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/Ayushchugh15/SPRA/internal/entity"
	"github.com/Ayushchugh15/SPRA/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	TestSchema = "test_spra"
	JWTSecret  = "spra-jwt-secret-key-2024"
)

// projectRoot returns the project root directory by looking for go.mod
func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// loadEnv loads .env from the project root
func loadEnv() {
	root := projectRoot()
	if root != "" {
		godotenv.Load(filepath.Join(root, ".env"))
	}
}

// SetupTestDB creates a test database connection using a dedicated test schema.
// Each test gets an isolated schema that is cleaned up after the test.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	loadEnv()

	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "spra")
	password := getEnv("DB_PASSWORD", "spra123")
	dbname := getEnv("DB_NAME", "spra")

	baseDSN := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	// Create a unique test schema for isolation
	schemaName := fmt.Sprintf("%s_%d", TestSchema, time.Now().UnixNano()%1000000)

	// First: create schema using a temporary connection
	setupDB, err := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to database for schema setup: %v", err)
	}
	setupDB.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schemaName))
	sqlSetup, _ := setupDB.DB()
	sqlSetup.Close()

	// Second: open connection with search_path in DSN so ALL pooled connections use test schema
	testDSN := fmt.Sprintf("%s search_path=%s", baseDSN, schemaName)
	db, err := gorm.Open(postgres.Open(testDSN), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := entity.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test tables: %v", err)
	}

	// Cleanup on test completion
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		// Reconnect to drop the schema
		cleanDB, cleanErr := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if cleanErr == nil {
			cleanDB.Exec(fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName))
			sqlClean, _ := cleanDB.DB()
			if sqlClean != nil {
				sqlClean.Close()
			}
		}
	})

	return db
}

// SetupRouter creates a gin test router
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// AuthGroup creates an API group with JWT auth middleware for testing
func AuthGroup(r *gin.Engine, path string) *gin.RouterGroup {
	return r.Group(path, middleware.JWTAuth(JWTSecret))
}

// GenerateTestToken creates a valid JWT token for testing
func GenerateTestToken(userID, name, email, role string) string {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"uid":   userID,
		"name":  name,
		"email": email,
		"role":  role,
		"iss":   "spra",
		"iat":   now.Unix(),
		"exp":   now.Add(24 * time.Hour).Unix(),
		"jti":   fmt.Sprintf("test-jti-%d", now.UnixNano()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(JWTSecret))
	return tokenString
}

// DefaultTestToken returns a token for a default admin test user
func DefaultTestToken() string {
	return GenerateTestToken("test-user-001", "Test Admin", "admin@test.com", entity.RoleAdmin)
}

// DoRequest executes an HTTP request against the test router
func DoRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse parses the JSON response body into a map
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// SeedComponent creates a component row for tests
func SeedComponent(t *testing.T, db *gorm.DB, code string, inventory, moq, maxStock, unitCost float64, leadTimeDays int) *entity.Component {
	t.Helper()
	c := &entity.Component{
		ID:               uuid.New().String(),
		Code:             code,
		Name:             "Component " + code,
		Unit:             "pieces",
		CurrentInventory: inventory,
		MaxStockLevel:    maxStock,
		LeadTimeDays:     leadTimeDays,
		UnitCost:         unitCost,
		MinimumOrderQty:  moq,
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("Failed to seed component: %v", err)
	}
	return c
}

// SeedHornType creates a horn type with the given BOM rows
func SeedHornType(t *testing.T, db *gorm.DB, code string, bom map[string]float64) *entity.HornType {
	t.Helper()
	ht := &entity.HornType{
		ID:   uuid.New().String(),
		Code: code,
		Name: "Horn " + code,
	}
	if err := db.Create(ht).Error; err != nil {
		t.Fatalf("Failed to seed horn type: %v", err)
	}
	for componentID, qty := range bom {
		row := &entity.HornTypeComponent{
			ID:              uuid.New().String(),
			HornTypeID:      ht.ID,
			ComponentID:     componentID,
			QuantityPerHorn: qty,
		}
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("Failed to seed BOM row: %v", err)
		}
	}
	return ht
}

// SeedOrder creates an order with one line item per horn type
func SeedOrder(t *testing.T, db *gorm.DB, number string, orderDate, deadline time.Time, lines map[string]int) *entity.Order {
	t.Helper()
	o := &entity.Order{
		ID:           uuid.New().String(),
		OrderNumber:  number,
		CustomerName: "Test Customer",
		OrderDate:    orderDate,
		Deadline:     deadline,
		Status:       entity.OrderStatusPending,
	}
	if err := db.Create(o).Error; err != nil {
		t.Fatalf("Failed to seed order: %v", err)
	}
	for hornTypeID, qty := range lines {
		item := &entity.OrderLineItem{
			ID:         uuid.New().String(),
			OrderID:    o.ID,
			HornTypeID: hornTypeID,
			Quantity:   qty,
		}
		if err := db.Create(item).Error; err != nil {
			t.Fatalf("Failed to seed line item: %v", err)
		}
	}
	return o
}

// SeedConfig creates the production config row
func SeedConfig(t *testing.T, db *gorm.DB, capacity, daysPerWeek, maxInvDays, safetyDays int) *entity.ProductionConfig {
	t.Helper()
	cfg := &entity.ProductionConfig{
		ID:                 uuid.New().String(),
		DailyCapacity:      capacity,
		WorkingDaysPerWeek: daysPerWeek,
		MaxInventoryDays:   maxInvDays,
		SafetyStockDays:    safetyDays,
	}
	if err := db.Create(cfg).Error; err != nil {
		t.Fatalf("Failed to seed production config: %v", err)
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
