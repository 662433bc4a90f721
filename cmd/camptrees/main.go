package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/chzyer/readline"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/cinnabarheron/camptrees"
)

var log = logrus.New()

func printUpdates(s *camptrees.Solver, wg *sync.WaitGroup) {
	defer wg.Done()
	if s.Progress == nil {
		return
	}
	fmt.Println("Solving...")
	for {
		select {
		case update, ok := <-s.Progress:
			if !ok {
				return
			}
			bar := ""
			pct := float64(update.Assigned) / float64(update.GridSize)
			for i := 0.05; i <= 1.0; i += 0.05 {
				if pct >= i {
					bar += "="
				} else {
					bar += "."
				}
			}
			fmt.Print("\033[1A\033[K")
			fmt.Printf("[%s] %d/%d (%s)\n", bar, update.Assigned, update.GridSize, update.CurrentAction)
		default:
			time.Sleep(50 * time.Millisecond)
		}
	}
}

func solveAndPrint(b *camptrees.Board, progress bool) error {
	var err error
	if progress {
		s := camptrees.NewSolver(b)
		var wg sync.WaitGroup
		wg.Add(1)
		go printUpdates(s, &wg)
		err = s.Solve()
		close(s.Progress)
		wg.Wait()
	} else {
		err = b.Solve()
	}
	if err != nil {
		return err
	}
	fmt.Println(b)
	return nil
}

func boardFromStdin() (*camptrees.Board, error) {
	scanner := bufio.NewScanner(os.Stdin)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return camptrees.ParseLines(lines)
}

// interact runs a readline loop: quota descriptors, then grid rows until a
// blank line; repeats until EOF or interrupt.
func interact() error {
	rl, err := readline.New("rows> ")
	if err != nil {
		return err
	}
	defer rl.Close()
	for {
		rl.SetPrompt("rows> ")
		rowLine, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		rl.SetPrompt("columns> ")
		columnLine, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		lines := []string{rowLine, columnLine}
		rl.SetPrompt("grid (blank line to solve)> ")
		for {
			gridLine, err := rl.Readline()
			if err == readline.ErrInterrupt || err == io.EOF {
				return nil
			} else if err != nil {
				return err
			}
			if strings.TrimSpace(gridLine) == "" {
				break
			}
			lines = append(lines, gridLine)
		}
		b, err := camptrees.ParseLines(lines)
		if err != nil {
			log.Errorf("bad puzzle: %v", err)
			continue
		}
		if err := solveAndPrint(b, true); err != nil {
			log.Errorf("%v", err)
		}
	}
}

func main() {
	file := flag.String("f", "", "read the puzzle from a file instead of stdin")
	interactive := flag.Bool("i", false, "enter puzzles interactively")
	cpuprofile := flag.Bool("cpuprofile", false, "write a CPU profile to the working directory")
	logFile := flag.String("log", "", "also log to this file, rotated")
	verbose := flag.Bool("v", false, "debug-level rule tracing")
	timings := flag.Bool("timings", false, "print per-rule timings after solving")
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
		camptrees.EnableDebugLogging()
	}
	if *logFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   *logFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Level:      logrus.DebugLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		log.AddHook(hook)
	}
	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if *interactive {
		if err := interact(); err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
		return
	}

	var (
		b   *camptrees.Board
		err error
	)
	if *file != "" {
		b, err = camptrees.BoardFromFile(*file)
	} else {
		b, err = boardFromStdin()
	}
	if err == nil {
		err = solveAndPrint(b, false)
	}
	if *timings {
		fmt.Fprintf(os.Stderr, "Stopwatch:\n%s", camptrees.Watch.Results())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
