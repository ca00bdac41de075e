// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/Fantom-foundation/Vigil/go/handler"
	"github.com/Fantom-foundation/Vigil/go/inspector"
	"github.com/Fantom-foundation/Vigil/go/interpreter/stepvm"
	"github.com/Fantom-foundation/Vigil/go/processor/floria"
	"github.com/Fantom-foundation/Vigil/go/state"
	"github.com/Fantom-foundation/Vigil/go/tosca"
	"github.com/Fantom-foundation/Vigil/go/tosca/vm"
	"github.com/dsnet/golib/unitconv"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/olekukonko/tablewriter"
)

var (
	sender   = tosca.Address{0x10}
	receiver = tosca.Address{0x20}
	coinbase = tosca.Address{0xc0}
)

const topStatistics = 20

// runConfig summarizes the options of a run command.
type runConfig struct {
	code       []byte
	input      []byte
	value      tosca.Value
	gas        tosca.Gas
	revision   tosca.Revision
	trace      bool
	stats      bool
	callTrace  bool
	repeat     int
	denyCreate bool
	blocked    []tosca.Address
	logLevel   slog.Level
	logger     log.Logger
}

// gasTrace collects the steps of a transaction together with the gas
// figures derived by a GasInspector.
type gasTrace struct {
	inspector.GasInspector
	pc   uint64
	op   vm.OpCode
	rows [][]string
}

func (g *gasTrace) Step(ctx *tosca.EvmContext, interp tosca.InterpreterState) {
	g.GasInspector.Step(ctx, interp)
	g.pc = interp.ProgramCounter()
	g.op = interp.CurrentOpCode()
}

func (g *gasTrace) StepEnd(ctx *tosca.EvmContext, interp tosca.InterpreterState) {
	g.GasInspector.StepEnd(ctx, interp)
	g.rows = append(g.rows, []string{
		strconv.Itoa(ctx.Depth),
		strconv.FormatUint(g.pc, 10),
		g.op.String(),
		strconv.FormatUint(uint64(g.GasRemaining()), 10),
		strconv.FormatUint(uint64(g.LastGasCost()), 10),
	})
}

func execute(config runConfig, out io.Writer) error {
	if config.logger == nil {
		config.logger = log.Root()
	}
	if config.repeat <= 0 {
		config.repeat = 1
	}
	interpreter, err := stepvm.NewInterpreter(stepvm.Config{})
	if err != nil {
		return err
	}

	stats := inspector.NewStatisticsInspector()
	var (
		trace   *gasTrace
		tracer  *inspector.CallTracer
		receipt tosca.Receipt
	)

	start := time.Now()
	for i := 0; i < config.repeat; i++ {
		// Observers are registered before policies, so they see the
		// results as rewritten by the policies.
		var inspectors []inspector.Inspector
		if i == 0 {
			if config.trace {
				trace = &gasTrace{}
				inspectors = append(inspectors, trace)
			}
			if config.callTrace {
				tracer = inspector.NewCallTracer()
				inspectors = append(inspectors, tracer)
			}
			if config.logLevel <= slog.LevelDebug {
				inspectors = append(inspectors, inspector.NewLoggingInspector(config.logger, inspector.LoggingConfig{
					Steps: config.logLevel <= log.LevelTrace,
				}))
			}
		}
		if config.stats {
			inspectors = append(inspectors, stats)
		}
		if len(config.blocked) > 0 {
			inspectors = append(inspectors, inspector.NewCallBlocker(config.blocked...))
		}
		if config.denyCreate {
			inspectors = append(inspectors, &inspector.CreateDenier{})
		}

		receipt, err = runOnce(interpreter, config, inspectors)
		if err != nil {
			return fmt.Errorf("run %d failed: %w", i, err)
		}
	}
	elapsed := time.Since(start)
	config.logger.Info("Execution finished", "runs", config.repeat, "elapsed", elapsed)

	printReceipt(out, receipt)
	if trace != nil {
		printTrace(out, trace)
	}
	if tracer != nil {
		data, err := json.MarshalIndent(tracer, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode call trace: %w", err)
		}
		fmt.Fprintf(out, "\nCall trace:\n%s\n", data)
	}
	if config.stats {
		printStatistics(out, stats, config.repeat)
	}
	if config.repeat > 1 {
		rate := float64(config.repeat) / elapsed.Seconds()
		gasRate := float64(uint64(receipt.GasUsed)*uint64(config.repeat)) / elapsed.Seconds()
		fmt.Fprintf(out, "\nExecuted %d runs in %v, ~%s runs per second, ~%sgas per second\n",
			config.repeat, elapsed.Round(time.Microsecond),
			unitconv.FormatPrefix(rate, unitconv.SI, 0),
			unitconv.FormatPrefix(gasRate, unitconv.SI, 1),
		)
	}
	return nil
}

func runOnce(interpreter tosca.Interpreter, config runConfig, inspectors []inspector.Inspector) (tosca.Receipt, error) {
	registrants := make([]handler.Registrant, 0, len(inspectors))
	for _, cur := range inspectors {
		registrants = append(registrants, handler.InspectorHandle{Inspector: cur})
	}
	processor := floria.NewProcessor(interpreter, handler.BuildMainnet(registrants...))

	context := state.New(state.Accounts{
		sender:   {Balance: tosca.NewValue(1 << 62)},
		receiver: {Code: config.code},
	})
	recipient := receiver
	return processor.Run(tosca.BlockParameters{
		BlockNumber: 1,
		Timestamp:   1,
		Coinbase:    coinbase,
		GasLimit:    config.gas,
		Revision:    config.revision,
	}, tosca.Transaction{
		Sender:    sender,
		Recipient: &recipient,
		Input:     config.input,
		Value:     config.value,
		GasLimit:  config.gas,
		GasPrice:  tosca.NewValue(1),
	}, context)
}

func printReceipt(out io.Writer, receipt tosca.Receipt) {
	status := "success"
	if !receipt.Success {
		status = "failure"
	}
	fmt.Fprintf(out, "Status:   %s\n", status)
	fmt.Fprintf(out, "Gas used: %d\n", receipt.GasUsed)
	fmt.Fprintf(out, "Output:   %s\n", hexutil.Encode(receipt.Output))
	fmt.Fprintf(out, "Logs:     %d\n", len(receipt.Logs))
}

func printTrace(out io.Writer, trace *gasTrace) {
	fmt.Fprintf(out, "\nTrace:\n")
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Depth", "PC", "Op", "Gas", "Cost"})
	table.AppendBulk(trace.rows)
	table.Render()
}

// printStatistics renders the counts of the given inspector, which are
// accumulated over the given number of runs.
func printStatistics(out io.Writer, stats *inspector.StatisticsInspector, runs int) {
	percent := func(count uint64) string {
		if stats.Steps() == 0 {
			return "0.00%"
		}
		return fmt.Sprintf("%.2f%%", float64(count*100)/float64(stats.Steps()))
	}

	fmt.Fprintf(out, "\nInstructions (%d runs):\n", runs)
	singles := tablewriter.NewWriter(out)
	singles.SetHeader([]string{"Op", "Count", "Share"})
	for i, cur := range stats.Singles() {
		if i >= topStatistics {
			break
		}
		singles.Append([]string{cur.OpCodes.String(), strconv.FormatUint(cur.Count, 10), percent(cur.Count)})
	}
	singles.SetFooter([]string{"Total", strconv.FormatUint(stats.Steps(), 10), ""})
	singles.Render()

	fmt.Fprintf(out, "\nPairs:\n")
	pairs := tablewriter.NewWriter(out)
	pairs.SetHeader([]string{"First", "Second", "Count"})
	for i, cur := range stats.Pairs() {
		if i >= topStatistics {
			break
		}
		pairs.Append([]string{cur.OpCodes.First.String(), cur.OpCodes.Second.String(), strconv.FormatUint(cur.Count, 10)})
	}
	pairs.Render()
}
