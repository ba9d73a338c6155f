// Package main implements very simple grpc client that can be used for testing ghinsights grpc server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	appGrpc "github.com/m-zajac/ghinsights/internal/api/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	serverAddr = flag.String("s", "localhost:9090", "The server address in the format of host:port")
	method     = flag.String("method", appGrpc.MethodProfileSummary, "Method name: ProfileSummary, CommitTrend, RepositoryTimeline or RepositoryDetails")
	token      = flag.String("token", "", "GitHub token")
	user       = flag.String("user", "", "GitHub username")
	owner      = flag.String("owner", "", "Repository owner")
	repo       = flag.String("repo", "", "Repository name")
	timeout    = flag.Duration("timeout", 60*time.Second, "Call timeout")
)

func main() {
	flag.Parse()

	conn, err := grpc.NewClient(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()
	client := appGrpc.NewClient(conn)

	req, err := structpb.NewStruct(map[string]interface{}{
		"username": *user,
		"owner":    *owner,
		"repo":     *repo,
	})
	if err != nil {
		log.Fatalf("building request: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+*token)

	resp, err := client.Call(ctx, *method, req)
	if err != nil {
		log.Fatalf("server response error: %v", err)
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		log.Fatalf("encoding response: %v", err)
	}
	fmt.Println(string(out))
}
