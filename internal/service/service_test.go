package service

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"connectrpc.com/connect"

	"github.com/splitscan/splitscan/internal/models"
	"github.com/splitscan/splitscan/internal/parser"
	"github.com/splitscan/splitscan/internal/storage/sqlite"
)

// setupTestServer starts both services over an in-memory mux with a
// temporary SQLite database.
func setupTestServer(t *testing.T) (*httptest.Server, func()) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	mux := http.NewServeMux()
	receiptPath, receiptHandler := NewReceiptServiceHandler(
		NewReceiptService(store, parser.DefaultConfig()))
	mux.Handle(receiptPath, receiptHandler)
	splitPath, splitHandler := NewSplitServiceHandler(NewSplitService(store))
	mux.Handle(splitPath, splitHandler)

	server := httptest.NewServer(mux)
	cleanup := func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	}
	return server, cleanup
}

func newClient[Req, Res any](server *httptest.Server, procedure string) *connect.Client[Req, Res] {
	return connect.NewClient[Req, Res](
		http.DefaultClient,
		server.URL+procedure,
		WithJSONCodec(),
	)
}

func TestParseReceiptEndToEnd(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	parseClient := newClient[ParseReceiptRequest, ParseReceiptResponse](server, ParseReceiptProcedure)
	getClient := newClient[GetReceiptRequest, GetReceiptResponse](server, GetReceiptProcedure)

	text := "WALMART SUPERCENTER\n123 MAIN ST 55555\nGREAT VALUE MILK 3.49\nBANANAS 1.12\nSUBTOTAL 4.61\nTAX 0.37\nTOTAL 4.98"
	resp, err := parseClient.CallUnary(context.Background(), connect.NewRequest(&ParseReceiptRequest{Text: text}))
	if err != nil {
		t.Fatalf("ParseReceipt failed: %v", err)
	}

	if resp.Msg.ReceiptID == "" {
		t.Error("expected a receipt ID")
	}
	if resp.Msg.Data.StoreName != "WALMART SUPERCENTER" {
		t.Errorf("store name = %q", resp.Msg.Data.StoreName)
	}
	if resp.Msg.Data.Total != "4.98" {
		t.Errorf("total = %q, want 4.98", resp.Msg.Data.Total)
	}
	if len(resp.Msg.Data.Items) != 2 {
		t.Errorf("items = %d, want 2", len(resp.Msg.Data.Items))
	}

	got, err := getClient.CallUnary(context.Background(), connect.NewRequest(&GetReceiptRequest{ReceiptID: resp.Msg.ReceiptID}))
	if err != nil {
		t.Fatalf("GetReceipt failed: %v", err)
	}
	if got.Msg.Receipt.Total == nil || math.Abs(*got.Msg.Receipt.Total-4.98) > 0.001 {
		t.Errorf("stored total = %v, want 4.98", got.Msg.Receipt.Total)
	}
	if got.Msg.Receipt.StoreName != "WALMART SUPERCENTER" {
		t.Errorf("stored store name = %q", got.Msg.Receipt.StoreName)
	}
}

func TestParseReceiptGarbageDegrades(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	client := newClient[ParseReceiptRequest, ParseReceiptResponse](server, ParseReceiptProcedure)

	resp, err := client.CallUnary(context.Background(), connect.NewRequest(&ParseReceiptRequest{Text: "%%%%\n????\n!!"}))
	if err != nil {
		t.Fatalf("ParseReceipt failed on garbage: %v", err)
	}
	if resp.Msg.Data.Total != "" || resp.Msg.Data.StoreName != "" {
		t.Errorf("expected empty fields, got %+v", resp.Msg.Data)
	}
}

func TestParseReceiptEmptyText(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	client := newClient[ParseReceiptRequest, ParseReceiptResponse](server, ParseReceiptProcedure)

	_, err := client.CallUnary(context.Background(), connect.NewRequest(&ParseReceiptRequest{}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("code = %v, want invalid_argument", connect.CodeOf(err))
	}
}

func TestSplitBillItemized(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	splitClient := newClient[SplitBillRequest, SplitBillResponse](server, SplitBillProcedure)
	getClient := newClient[GetSplitRequest, GetSplitResponse](server, GetSplitProcedure)

	req := &SplitBillRequest{
		ReceiptData: models.ReceiptRecord{
			Items: []models.ReceiptItem{
				{Name: "MILK", Price: "3.49"},
				{Name: "BREAD", Price: "2.51"},
			},
			Total: "6.60",
		},
		Participants: []string{"Alice", "Bob"},
		TaxRate:      10,
	}
	resp, err := splitClient.CallUnary(context.Background(), connect.NewRequest(req))
	if err != nil {
		t.Fatalf("SplitBill failed: %v", err)
	}

	if resp.Msg.SplitID == "" {
		t.Error("expected a split ID")
	}
	if resp.Msg.SplitResult == nil {
		t.Fatal("expected an itemized result")
	}
	if math.Abs(resp.Msg.SplitResult.Summary.TotalSubtotal-6.00) > 0.005 {
		t.Errorf("total subtotal = %v, want 6.00", resp.Msg.SplitResult.Summary.TotalSubtotal)
	}
	// The historical auto-assignment charges all items to the first
	// participant.
	if math.Abs(resp.Msg.SplitResult.Participants[0].Subtotal-6.00) > 0.005 {
		t.Errorf("Alice subtotal = %v, want 6.00", resp.Msg.SplitResult.Participants[0].Subtotal)
	}

	got, err := getClient.CallUnary(context.Background(), connect.NewRequest(&GetSplitRequest{SplitID: resp.Msg.SplitID}))
	if err != nil {
		t.Fatalf("GetSplit failed: %v", err)
	}
	if got.Msg.Split.SplitMethod != "itemized" {
		t.Errorf("split method = %q, want itemized", got.Msg.Split.SplitMethod)
	}
	var stored models.SplitResult
	if err := json.Unmarshal(got.Msg.Split.Result, &stored); err != nil {
		t.Fatalf("failed to decode stored result: %v", err)
	}
	if math.Abs(stored.Summary.TotalTax-0.60) > 0.005 {
		t.Errorf("stored total tax = %v, want 0.60", stored.Summary.TotalTax)
	}
}

func TestSplitBillEven(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	client := newClient[SplitBillRequest, SplitBillResponse](server, SplitBillProcedure)

	req := &SplitBillRequest{
		ReceiptData:  models.ReceiptRecord{Total: "100.00"},
		Participants: []string{"Alice", "Bob", "Carol"},
		SplitMethod:  "even",
	}
	resp, err := client.CallUnary(context.Background(), connect.NewRequest(req))
	if err != nil {
		t.Fatalf("SplitBill failed: %v", err)
	}
	if resp.Msg.EvenSplit == nil {
		t.Fatal("expected an even split result")
	}
	if math.Abs(resp.Msg.EvenSplit.PerPerson-33.33) > 0.005 {
		t.Errorf("per person = %v, want 33.33", resp.Msg.EvenSplit.PerPerson)
	}
	if math.Abs(resp.Msg.EvenSplit.RoundingDifference-0.01) > 0.005 {
		t.Errorf("rounding difference = %v, want 0.01", resp.Msg.EvenSplit.RoundingDifference)
	}
}

func TestSplitBillNoParticipants(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	client := newClient[SplitBillRequest, SplitBillResponse](server, SplitBillProcedure)

	_, err := client.CallUnary(context.Background(), connect.NewRequest(&SplitBillRequest{}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("code = %v, want invalid_argument", connect.CodeOf(err))
	}
}

func TestEvenSplitRPC(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	client := newClient[EvenSplitRequest, EvenSplitResponse](server, EvenSplitProcedure)

	resp, err := client.CallUnary(context.Background(), connect.NewRequest(&EvenSplitRequest{TotalAmount: 100, NumPeople: 3}))
	if err != nil {
		t.Fatalf("EvenSplit failed: %v", err)
	}
	if math.Abs(resp.Msg.Result.AllocatedTotal-99.99) > 0.005 {
		t.Errorf("allocated total = %v, want 99.99", resp.Msg.Result.AllocatedTotal)
	}

	_, err = client.CallUnary(context.Background(), connect.NewRequest(&EvenSplitRequest{TotalAmount: 100, NumPeople: 0}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("code = %v, want invalid_argument", connect.CodeOf(err))
	}
}

func TestGetSplitNotFound(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	client := newClient[GetSplitRequest, GetSplitResponse](server, GetSplitProcedure)

	_, err := client.CallUnary(context.Background(), connect.NewRequest(&GetSplitRequest{SplitID: "nope"}))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Errorf("code = %v, want not_found", connect.CodeOf(err))
	}
}
