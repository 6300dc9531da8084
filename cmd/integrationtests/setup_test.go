package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	bidding "auctions/internal/biddingService"
	model "auctions/internal/models"
	"auctions/internal/repository"
	"auctions/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type sentNotification struct {
	AuctionID model.AuctionID
	BidderID  model.BidderID
}

// recordingGateway stands in for the mailer
type recordingGateway struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (g *recordingGateway) NotifyAboutWinningAuction(_ context.Context, auctionID model.AuctionID, bidderID model.BidderID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sent = append(g.sent, sentNotification{AuctionID: auctionID, BidderID: bidderID})
	return nil
}

func (g *recordingGateway) Sent() []sentNotification {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]sentNotification(nil), g.sent...)
}

// SetupTestRouterWithAuctions initializes the router over a memory repository seeded with auctions.
func SetupTestRouterWithAuctions(t *testing.T, auctions ...*model.Auction) (*gin.Engine, *recordingGateway) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, a := range auctions {
		require.NoError(t, repo.Create(context.Background(), a))
	}

	gateway := &recordingGateway{}
	service := bidding.NewBiddingService(repo, gateway)
	return server.SetupRouter(service), gateway
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}
