// Package proto holds the Authority gRPC contract compiled from
// authority.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative authority.proto
