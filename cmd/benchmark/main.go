package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/limaJavier/enigma/pkg/config"
	"github.com/limaJavier/enigma/pkg/enigma"
	"github.com/samber/lo"
)

const (
	resultsFile = "benchmark_results.csv"
	seed        = 1918
	MB          = 1024 * 1024
)

type ResultType int

const (
	encoded ResultType = iota
	failed
)

var resultTypes = map[ResultType]string{
	encoded: "encoded",
	failed:  "failed",
}

type MachineMetadata struct {
	Rotors  int
	Pairs   int
	Notches int
}

type BenchmarkResult struct {
	Machine    MachineMetadata
	Length     int
	Duration   int64 // Microseconds
	Throughput float64
	Memory     float32
	Result     ResultType
}

func main() {
	machines := getMachines()
	lengths := getLengths()
	results := make([]BenchmarkResult, 0, len(machines)*len(lengths))
	rng := rand.New(rand.NewSource(seed))

	for _, machine := range machines {
		for _, length := range lengths {
			fmt.Printf("Benchmarking %v rotors, %v plugboard pairs and %v notches per rotor on %v characters\n", machine.Rotors, machine.Pairs, machine.Notches, length)

			results = append(results, measure(rng, machine, length))
		}
	}

	toCsv(results)
}

func getMachines() []MachineMetadata {
	return lo.FlatMap([]int{0, 1, 3, 5, 8}, func(rotors int, _ int) []MachineMetadata {
		return []MachineMetadata{
			{Rotors: rotors, Pairs: 0, Notches: 1},
			{Rotors: rotors, Pairs: 10, Notches: 1},
			{Rotors: rotors, Pairs: 13, Notches: 2},
		}
	})
}

func getLengths() []int {
	return []int{1_000, 10_000, 100_000}
}

func measure(rng *rand.Rand, metadata MachineMetadata, length int) BenchmarkResult {
	result := BenchmarkResult{Machine: metadata, Length: length}

	machine, err := config.RandomMachine(rng, metadata.Rotors, metadata.Pairs, metadata.Notches)
	if err != nil {
		log.Printf("cannot build machine %+v: %v", metadata, err)
		result.Result = failed
		return result
	}
	message := randomMessage(rng, length)

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	start := time.Now()

	_, err = machine.EncodeString(message)

	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)

	if err != nil {
		log.Printf("an error occurred while encoding with machine %+v: %v", metadata, err)
		result.Result = failed
	} else {
		result.Result = encoded
	}
	result.Duration = elapsed.Microseconds()
	result.Throughput = throughput(length, elapsed)
	result.Memory = float32(after.TotalAlloc-before.TotalAlloc) / MB
	return result
}

func randomMessage(rng *rand.Rand, length int) string {
	var builder strings.Builder
	builder.Grow(length)
	for range length {
		builder.WriteByte(enigma.ToLetter(rng.Intn(enigma.AlphabetSize)))
	}
	return builder.String()
}

// throughput returns the encoded characters per second
func throughput(length int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(length) / elapsed.Seconds()
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create(resultsFile)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Rotors", "Plugboard-Pairs", "Notches", "Length", "Duration(us)", "Throughput(chars/s)", "Memory(MB)", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func toRecord(result BenchmarkResult) []string {
	return []string{
		fmt.Sprintf("%d", result.Machine.Rotors),
		fmt.Sprintf("%d", result.Machine.Pairs),
		fmt.Sprintf("%d", result.Machine.Notches),
		fmt.Sprintf("%d", result.Length),
		fmt.Sprintf("%d", result.Duration),
		fmt.Sprintf("%.0f", result.Throughput),
		fmt.Sprintf("%.3f", result.Memory),
		resultTypes[result.Result],
	}
}
