package run

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/noisebase/noisebase/log"
	"github.com/noisebase/noisebase/modules"
)

// Run executes a full program lifecycle (including signal handling) based on modules. Just empty-import required packages and do os.Exit(run.Run()).
func Run() int {

	// start
	err := modules.Start()
	if err != nil {
		if err == modules.ErrCleanExit {
			return 0
		}

		_ = modules.Shutdown()
		return modules.GetExitStatusCode()
	}

	// catch interrupt for clean shutdown
	signalCh := make(chan os.Signal, 1)
	signal.Notify(
		signalCh,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)

	select {
	case <-signalCh:
		fmt.Println(" <INTERRUPT>")
		log.Warning("main: program was interrupted, shutting down.")

		// catch signals during shutdown
		go func() {
			forceCnt := 5
			for {
				<-signalCh
				forceCnt--
				if forceCnt > 0 {
					fmt.Printf(" <INTERRUPT> again, but already shutting down. %d more to force.\n", forceCnt)
				} else {
					fmt.Fprintln(os.Stderr, "===== FORCED EXIT =====")
					printStackTo(os.Stderr)
					os.Exit(1)
				}
			}
		}()

		go func() {
			time.Sleep(3 * time.Minute)
			fmt.Fprintln(os.Stderr, "===== TAKING TOO LONG FOR SHUTDOWN =====")
			printStackTo(os.Stderr)
			os.Exit(1)
		}()

		_ = modules.Shutdown()

	case <-modules.ShuttingDown():
	}

	return modules.GetExitStatusCode()
}

func printStackTo(writer io.Writer) {
	fmt.Fprintln(writer, "=== PRINTING TRACES ===")
	_ = pprof.Lookup("goroutine").WriteTo(writer, 1)
	fmt.Fprintln(writer, "=== END TRACES ===")
}
