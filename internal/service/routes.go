package service

import (
	"net/http"

	"connectrpc.com/connect"
)

// Procedure paths follow the Connect convention of
// /<package>.<version>.<Service>/<Method>.
const (
	ReceiptServicePrefix  = "/splitscan.v1.ReceiptService/"
	ParseReceiptProcedure = ReceiptServicePrefix + "ParseReceipt"

	SplitServicePrefix  = "/splitscan.v1.SplitService/"
	SplitBillProcedure  = SplitServicePrefix + "SplitBill"
	EvenSplitProcedure  = SplitServicePrefix + "EvenSplit"
	GetReceiptProcedure = SplitServicePrefix + "GetReceipt"
	GetSplitProcedure   = SplitServicePrefix + "GetSplit"
)

// NewReceiptServiceHandler mounts the receipt service and returns the path
// prefix to register it under.
func NewReceiptServiceHandler(svc *ReceiptService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSONCodec()}, opts...)
	mux := http.NewServeMux()
	mux.Handle(ParseReceiptProcedure, connect.NewUnaryHandler(
		ParseReceiptProcedure, svc.ParseReceipt, opts...,
	))
	return ReceiptServicePrefix, mux
}

// NewSplitServiceHandler mounts the split service and returns the path
// prefix to register it under.
func NewSplitServiceHandler(svc *SplitService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSONCodec()}, opts...)
	mux := http.NewServeMux()
	mux.Handle(SplitBillProcedure, connect.NewUnaryHandler(
		SplitBillProcedure, svc.SplitBill, opts...,
	))
	mux.Handle(EvenSplitProcedure, connect.NewUnaryHandler(
		EvenSplitProcedure, svc.EvenSplit, opts...,
	))
	mux.Handle(GetReceiptProcedure, connect.NewUnaryHandler(
		GetReceiptProcedure, svc.GetReceipt, opts...,
	))
	mux.Handle(GetSplitProcedure, connect.NewUnaryHandler(
		GetSplitProcedure, svc.GetSplit, opts...,
	))
	return SplitServicePrefix, mux
}
