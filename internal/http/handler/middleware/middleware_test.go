package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"sendr/internal/http/handler/middleware"
	"sendr/internal/http/handler/middleware/fake"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("AuthMiddleware", func() {
	var (
		auth       *middleware.AuthMiddleware
		fakeTokens *fake.TokenValidator
		w          *httptest.ResponseRecorder
		req        *http.Request
		seenID     string
		handler    http.Handler
	)

	BeforeEach(func() {
		fakeTokens = new(fake.TokenValidator)
		auth = middleware.NewAuthMiddleware(zap.NewNop().Sugar(), fakeTokens)

		seenID = ""
		handler = auth.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id, ok := r.Context().Value(middleware.AccountIDKey).(string); ok {
				seenID = id
			}
			w.WriteHeader(http.StatusOK)
		}))

		w = httptest.NewRecorder()
		req = httptest.NewRequest("POST", "/wallet/send", nil)
	})

	When("a valid bearer token is presented", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Bearer good-token")
			fakeTokens.ValidateReturns(jwt.MapClaims{"sub": "acc-1"}, nil)
		})

		It("passes the account id to the handler", func() {
			handler.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(seenID).To(Equal("acc-1"))
			Expect(fakeTokens.ValidateArgsForCall(0)).To(Equal("good-token"))
		})
	})

	When("the authorization header is missing", func() {
		It("rejects with 401", func() {
			handler.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("missing bearer token"))
			Expect(fakeTokens.ValidateCallCount()).To(Equal(0))
			Expect(seenID).To(BeEmpty())
		})
	})

	When("the token does not validate", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Bearer bad-token")
			fakeTokens.ValidateReturns(nil, errors.New("expired"))
		})

		It("rejects with 401", func() {
			handler.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("invalid token"))
			Expect(seenID).To(BeEmpty())
		})
	})

	When("the token has no subject claim", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Bearer good-token")
			fakeTokens.ValidateReturns(jwt.MapClaims{"aud": "wallet"}, nil)
		})

		It("rejects with 401", func() {
			handler.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(seenID).To(BeEmpty())
		})
	})
})

var _ = Describe("RequestIDMiddleware", func() {
	var (
		rid     *middleware.RequestIDMiddleware
		w       *httptest.ResponseRecorder
		req     *http.Request
		seenID  string
		handler http.Handler
	)

	BeforeEach(func() {
		rid = middleware.NewRequestIDMiddleware()

		seenID = ""
		handler = rid.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
				seenID = id
			}
		}))

		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/wallet/balances/0xabc", nil)
	})

	When("the client supplies a request id", func() {
		BeforeEach(func() {
			req.Header.Set("X-Request-ID", "client-id-1")
		})

		It("propagates it", func() {
			handler.ServeHTTP(w, req)

			Expect(seenID).To(Equal("client-id-1"))
			Expect(w.Header().Get("X-Request-ID")).To(Equal("client-id-1"))
		})
	})

	When("no request id is supplied", func() {
		It("generates one", func() {
			handler.ServeHTTP(w, req)

			Expect(seenID).NotTo(BeEmpty())
			Expect(uuid.Validate(seenID)).To(Succeed())
			Expect(w.Header().Get("X-Request-ID")).To(Equal(seenID))
		})
	})
})

var _ = Describe("LoggingMiddleware", func() {
	It("invokes the wrapped handler", func() {
		logging := middleware.NewLoggingMiddleware(zap.NewNop().Sugar())

		called := false
		handler := logging.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusTeapot)
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		Expect(called).To(BeTrue())
		Expect(w.Code).To(Equal(http.StatusTeapot))
	})
})
