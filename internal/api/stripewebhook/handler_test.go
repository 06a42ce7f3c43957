package stripewebhooks

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v75/webhook"

	"social-scheduler/internal/domain/billing"
	"social-scheduler/internal/domain/plans"
	"social-scheduler/internal/domain/users"
	"social-scheduler/internal/infra/memory"
	"social-scheduler/internal/infra/metrics"
)

const testSecret = "whsec_test"

type fixture struct {
	router  *gin.Engine
	users   *memory.UserStore
	metrics *metrics.Metrics
	user    *users.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	store := memory.NewUserStore()
	u := &users.User{Email: "buyer@example.com", Role: "owner"}
	require.NoError(t, store.Create(ctx, u))

	prices := memory.NewPriceStore()
	require.NoError(t, prices.Upsert(ctx, &billing.PriceMapping{StripePriceID: "price_pro", Plan: plans.PlanPro}))

	m := metrics.NewMetrics(prometheus.NewRegistry())
	h := NewHandler(store, prices, testSecret, m)

	r := gin.New()
	r.POST("/webhook", h.StripeWebhook)
	return &fixture{router: r, users: store, metrics: m, user: u}
}

func (f *fixture) send(t *testing.T, eventType, object string) *httptest.ResponseRecorder {
	t.Helper()
	payload := fmt.Sprintf(`{"id":"evt_1","object":"event","type":%q,"data":{"object":%s}}`, eventType, object)

	now := time.Now()
	sig := hex.EncodeToString(webhook.ComputeSignature(now, []byte(payload), testSecret))
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(payload))
	req.Header.Set("Stripe-Signature", fmt.Sprintf("t=%d,v1=%s", now.Unix(), sig))

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) plan(t *testing.T) plans.Plan {
	t.Helper()
	u, err := f.users.FindByID(context.Background(), f.user.ID)
	require.NoError(t, err)
	return u.Plan
}

func subscription(status, price, userID, customer string) string {
	return fmt.Sprintf(
		`{"id":"sub_1","object":"subscription","status":%q,"customer":%q,"metadata":{"user_id":%q},"items":{"object":"list","data":[{"id":"si_1","price":{"id":%q}}]}}`,
		status, customer, userID, price,
	)
}

func TestStripeWebhook_SubscriptionLifecycle(t *testing.T) {
	f := newFixture(t)
	id := fmt.Sprint(f.user.ID)

	rec := f.send(t, "customer.subscription.created", subscription("active", "price_pro", id, "cus_1"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, plans.PlanPro, f.plan(t))

	rec = f.send(t, "customer.subscription.updated", subscription("past_due", "price_pro", id, "cus_1"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, plans.PlanPro, f.plan(t))

	rec = f.send(t, "customer.subscription.deleted", subscription("canceled", "price_pro", id, "cus_1"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, plans.PlanFree, f.plan(t))

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.PlanChangesTotal.WithLabelValues("pro", "stripe")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.PlanChangesTotal.WithLabelValues("free", "stripe")))
}

func TestStripeWebhook_UnmappedPriceKeepsPlan(t *testing.T) {
	f := newFixture(t)

	rec := f.send(t, "customer.subscription.updated", subscription("active", "price_unknown", fmt.Sprint(f.user.ID), ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, plans.PlanFree, f.plan(t))
}

func TestStripeWebhook_CheckoutLinksCustomer(t *testing.T) {
	f := newFixture(t)

	checkout := fmt.Sprintf(`{"id":"cs_1","object":"checkout.session","customer":"cus_9","client_reference_id":"%d"}`, f.user.ID)
	require.Equal(t, http.StatusOK, f.send(t, "checkout.session.completed", checkout).Code)

	u, err := f.users.FindByStripeCustomerID(context.Background(), "cus_9")
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, u.ID)

	// later events can omit metadata and match by customer
	rec := f.send(t, "customer.subscription.updated", subscription("trialing", "price_pro", "", "cus_9"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, plans.PlanPro, f.plan(t))
}

func TestStripeWebhook_UnknownUserIsAcknowledged(t *testing.T) {
	f := newFixture(t)

	rec := f.send(t, "customer.subscription.updated", subscription("active", "price_pro", "404", ""))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.send(t, "customer.subscription.updated", subscription("active", "price_pro", "", "cus_nobody"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStripeWebhook_Rejections(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"id":"evt_1"}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.send(t, "invoice.paid", `{"id":"in_1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ignored")

	h := NewHandler(f.users, memory.NewPriceStore(), "", nil)
	r := gin.New()
	r.POST("/webhook", h.StripeWebhook)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("{}")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUserIDFromMetadataOrRef(t *testing.T) {
	id, err := userIDFromMetadataOrRef(map[string]string{"user_id": "7"}, "8")
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)

	id, err = userIDFromMetadataOrRef(nil, "8")
	require.NoError(t, err)
	assert.Equal(t, uint(8), id)

	_, err = userIDFromMetadataOrRef(nil, "")
	assert.Error(t, err)
	_, err = userIDFromMetadataOrRef(map[string]string{"user_id": "abc"}, "")
	assert.Error(t, err)
	assert.Zero(t, userIDFromMetadata(map[string]string{"user_id": "0"}))
}
