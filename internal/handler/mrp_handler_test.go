package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/Ayushchugh15/SPRA/internal/entity"
	"github.com/Ayushchugh15/SPRA/internal/middleware"
	"github.com/Ayushchugh15/SPRA/internal/repository"
	"github.com/Ayushchugh15/SPRA/internal/service"
	"github.com/Ayushchugh15/SPRA/internal/testutil"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupMRPRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := service.NewMRPService(repos.MRP, repos.Order, repos.Component, repos.Config, db)
	audit := service.NewAuditService(repos.Audit, zap.NewNop())
	h := NewMRPHandler(svc, audit)

	r := testutil.SetupRouter()
	v1 := testutil.AuthGroup(r, "/api/v1")
	v1.POST("/orders/:id/mrp", middleware.RequireOperator(), h.Generate)
	v1.GET("/orders/:id/mrp", h.ListByOrder)
	v1.PUT("/mrp-plans/:id/status", middleware.RequireOperator(), h.UpdateStatus)
	return r, db
}

func seedPlanningData(t *testing.T, db *gorm.DB, quantity int) *entity.Order {
	t.Helper()
	testutil.SeedConfig(t, db, 1000, 6, 30, 3)
	comp := testutil.SeedComponent(t, db, "COMP-A", 100, 150, 0, 2.5, 10)
	horn := testutil.SeedHornType(t, db, "HORN-1", map[string]float64{comp.ID: 2})
	orderDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	return testutil.SeedOrder(t, db, "ORD-001", orderDate, deadline, map[string]int{horn.ID: quantity})
}

func TestMRPGenerateEndpoint(t *testing.T) {
	r, db := setupMRPRouter(t)
	order := seedPlanningData(t, db, 250)
	token := testutil.GenerateTestToken("u1", "Operator", "op@test.com", entity.RoleOperator)

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/orders/"+order.ID+"/mrp", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 0 {
		t.Fatalf("code = %v, body = %s", resp["code"], w.Body.String())
	}
	data := resp["data"].(map[string]interface{})
	summary := data["summary"].(map[string]interface{})
	if summary["order_quantity"].(float64) != 250 {
		t.Errorf("order_quantity = %v, want 250", summary["order_quantity"])
	}
	plans := data["plans"].([]interface{})
	if len(plans) != 1 {
		t.Fatalf("got %d plans, want 1", len(plans))
	}

	// 查询接口返回同一套计划
	w = testutil.DoRequest(r, http.MethodGet, "/api/v1/orders/"+order.ID+"/mrp", nil, token)
	resp = testutil.ParseResponse(w)
	if got := len(resp["data"].([]interface{})); got != 1 {
		t.Errorf("listed %d plans, want 1", got)
	}
}

func TestMRPGenerateCapacityError(t *testing.T) {
	r, db := setupMRPRouter(t)
	order := seedPlanningData(t, db, 200000)
	token := testutil.GenerateTestToken("u1", "Operator", "op@test.com", entity.RoleOperator)

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/orders/"+order.ID+"/mrp", nil, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 10008 {
		t.Fatalf("code = %v, want 10008", resp["code"])
	}
	data := resp["data"].(map[string]interface{})
	if data["required_days"].(float64) != 200 {
		t.Errorf("required_days = %v, want 200", data["required_days"])
	}
	if data["available_days"].(float64) != 12 {
		t.Errorf("available_days = %v, want 12", data["available_days"])
	}
}

func TestMRPStatusEndpoint(t *testing.T) {
	r, db := setupMRPRouter(t)
	order := seedPlanningData(t, db, 250)
	opToken := testutil.GenerateTestToken("u1", "Operator", "op@test.com", entity.RoleOperator)

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/orders/"+order.ID+"/mrp", nil, opToken)
	resp := testutil.ParseResponse(w)
	plans := resp["data"].(map[string]interface{})["plans"].([]interface{})
	planID := plans[0].(map[string]interface{})["id"].(string)

	// viewer不能改状态
	viewerToken := testutil.GenerateTestToken("u2", "Viewer", "view@test.com", entity.RoleViewer)
	w = testutil.DoRequest(r, http.MethodPut, "/api/v1/mrp-plans/"+planID+"/status",
		map[string]string{"status": entity.MRPStatusOrdered}, viewerToken)
	if w.Code != http.StatusForbidden {
		t.Fatalf("viewer status = %d, want 403", w.Code)
	}

	w = testutil.DoRequest(r, http.MethodPut, "/api/v1/mrp-plans/"+planID+"/status",
		map[string]string{"status": entity.MRPStatusOrdered}, opToken)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	// 回退被拒，409
	w = testutil.DoRequest(r, http.MethodPut, "/api/v1/mrp-plans/"+planID+"/status",
		map[string]string{"status": entity.MRPStatusPlanned}, opToken)
	if w.Code != http.StatusConflict {
		t.Fatalf("backward transition status = %d, want 409", w.Code)
	}
}
