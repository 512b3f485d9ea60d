// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/life-manager/backend/config"
	"github.com/life-manager/backend/internal/infra/dependency"
	redisinfra "github.com/life-manager/backend/internal/infra/redis"
	"github.com/life-manager/backend/internal/integration/cache"
	"github.com/life-manager/backend/internal/integration/persistence/model"
	"github.com/life-manager/backend/test/integration/mock"
)

const (
	testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
	testPassword  = "SecurePass123"
)

// suiteResources are shared by every scenario of a run.
type suiteResources struct {
	server   *httptest.Server
	db       *mock.Db
	redis    *redis.Client
	emailAPI *mock.ApiMock
	timeMock *mock.Time
}

var resources *suiteResources

// testContext holds the state of a single scenario.
type testContext struct {
	*suiteResources

	client        *http.Client
	headers       map[string]string
	response      *response
	accessToken   string
	refreshToken  string
	currentUserID uuid.UUID
	vars          map[string]string
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		resources = newSuiteResources()
	})

	ctx.AfterSuite(func() {
		if resources == nil {
			return
		}
		resources.server.Close()
		resources.emailAPI.Close()
	})
}

func newSuiteResources() *suiteResources {
	r := &suiteResources{
		db:       mock.NewDb(model.All()...),
		redis:    mock.NewRedis(),
		emailAPI: mock.NewApiServer(),
		timeMock: mock.NewTime(),
	}
	r.emailAPI.Start()

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.JWT.Secret = testJWTSecret
	cfg.Security.BcryptCost = bcrypt.MinCost
	cfg.RateLimit.LoginMaxAttempts = 0
	cfg.Email.ResendAPIKey = "re_test_key"
	cfg.Email.ResendBaseURL = r.emailAPI.GetUrl()
	cfg.Email.BudgetAlertsEnabled = true

	injector, err := dependency.NewInjector(cfg, r.db.DbConn, dependency.Options{
		Cache:       cache.NewRedisQueryCache(r.redis, time.Minute),
		CacheHealth: redisinfra.HealthCheck(r.redis),
		Now:         r.timeMock.Now,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to wire dependencies: %v", err))
	}

	r.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	return r
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Step(`^today is "([^"]*)"$`, test.todayIs)
	ctx.Step(`^the email provider accepts messages$`, test.theEmailProviderAcceptsMessages)

	// User setup steps
	ctx.Step(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Step(`^I am signed in as "([^"]*)"$`, test.iAmSignedInAs)

	// Header steps
	ctx.Step(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, test.iSaveTheResponseFieldAs)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should be null$`, test.theResponseFieldShouldBeNull)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)

	// Database assertion steps
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Email assertion steps
	ctx.Step(`^the email provider should have received (\d+) emails?$`, test.theEmailProviderShouldHaveReceived)
	ctx.Step(`^the last email should be sent to "([^"]*)"$`, test.theLastEmailShouldBeSentTo)
}

func (t *testContext) before() error {
	t.suiteResources = resources
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.vars = make(map[string]string)

	if t.suiteResources == nil {
		return fmt.Errorf("test suite was not initialized")
	}

	t.timeMock.Reset()
	t.emailAPI.ClearResponses()
	if err := mock.ClearRedis(t.redis); err != nil {
		return fmt.Errorf("failed to clear redis: %w", err)
	}
	return t.db.ClearDB()
}
