// Package llmv1 contains the generated gRPC bindings for the model
// service. Run go generate to produce them; generated files are not
// committed.
package llmv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
