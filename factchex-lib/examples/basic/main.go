// ABOUTME: Basic example showing claim checks with the Fact-Chex library
// ABOUTME: Demonstrates a one-off check and a checker driven like the web page

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	factchex "fact-chex/factchex-lib"
)

func main() {
	client, err := factchex.NewClient(
		factchex.WithBaseURL("http://127.0.0.1:8000"),
		factchex.WithTimeout(30*time.Second),
		factchex.WithQuietMode(),
	)
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	ctx := context.Background()

	fmt.Println("=== Service ===")
	if err := client.Ping(ctx); err != nil {
		fmt.Printf("Fact-check service is down: %v\n", err)
	} else {
		fmt.Printf("Posting claims to %s\n", client.Endpoint())
	}

	fmt.Println("\n=== One-off Check ===")
	result, err := client.Check(ctx, "The moon is made of cheese")
	if err != nil {
		fmt.Printf("Check failed: %v\n", err)
	} else {
		fmt.Printf("Verdict: %s (score %s)\n", result.Verdict, result.Score)
		fmt.Printf("Reasoning: %s\n", result.Reasoning)
	}

	fmt.Println("\n=== Checker ===")
	checker, err := client.NewChecker(ctx)
	if err != nil {
		log.Fatal("Failed to create checker:", err)
	}
	checker.SetQuery("Water boils at 100 degrees Celsius at sea level")
	state := checker.Search()
	fmt.Printf("Phase after search: %s\n", state.Phase())

	waitCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()
	if err := checker.Wait(waitCtx); err != nil {
		log.Fatal("Gave up waiting:", err)
	}

	state = checker.State()
	fmt.Printf("Phase: %s\n", state.Phase())
	fmt.Printf("Verdict: %s (score %s)\n", state.AnalysisResult.Verdict, state.AnalysisResult.Score)

	state = checker.CloseModal()
	fmt.Printf("Phase after close: %s\n", state.Phase())
}
