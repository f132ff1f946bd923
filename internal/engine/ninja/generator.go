package ninja

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/ninjify/internal/core/domain"
	"go.trai.ch/ninjify/internal/core/ports"
	"go.trai.ch/zerr"
)

// ruleCommandLimit is the inline-command size cutoff. Linux accepts command
// lines around 130kB; beyond this the command moves into a response file.
const ruleCommandLimit = 100 * 1000

// scriptMode is the permission mode of the generated wrapper script.
const scriptMode = 0o755

// Generator walks the dependency graph and writes the two generated
// artifacts. One generation pass is single-threaded: the visited set and
// the command buffer are owned exclusively by it.
type Generator struct {
	log    ports.Logger
	tracer ports.Tracer

	// per-run state, reset by Generate
	graph     *domain.Graph
	ev        ports.Evaluator
	cfg       domain.Config
	remoteCmd string
	visited   map[domain.Symbol]struct{}
	ruleID    int
	cmd       cmdBuffer
}

// NewGenerator creates a Generator.
func NewGenerator(log ports.Logger, tracer ports.Tracer) *Generator {
	return &Generator{
		log:    log,
		tracer: tracer,
	}
}

// Generate translates the graph into cfg.NinjaPath() and cfg.ScriptPath().
// It is a pure function of (graph, evaluator, cfg) apart from the file
// writes; the evaluator is held in I/O-suppressing mode for the duration.
func (g *Generator) Generate(ctx context.Context, graph *domain.Graph, ev ports.Evaluator, cfg domain.Config) error {
	restore := ev.SuppressIO()
	defer restore()

	g.graph = graph
	g.ev = ev
	g.cfg = cfg
	g.visited = make(map[domain.Symbol]struct{}, graph.Len())
	g.ruleID = 0
	g.remoteCmd = ""
	if cfg.RemoteExecDir != "" {
		g.remoteCmd = cfg.RemoteExecDir + "/gomacc "
	}

	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", cfg.OutputDir)
		}
	}

	if err := g.writeScript(ctx); err != nil {
		return err
	}
	return g.writeNinja(ctx)
}

func (g *Generator) genRuleName() string {
	name := fmt.Sprintf("rule%d", g.ruleID)
	g.ruleID++
	return name
}

// writeNinja writes the build description: header, the optional local pool
// declaration, then one rule and build statement per reachable node.
func (g *Generator) writeNinja(ctx context.Context) (err error) {
	_, span := g.tracer.Start(ctx, "write "+g.cfg.NinjaFilename())
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	path := g.cfg.NinjaPath()
	f, err := os.Create(path) //nolint:gosec // path comes from the generation config
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open build file"), "path", path)
	}
	w := bufio.NewWriter(f)

	fmt.Fprintf(w, "# Generated by ninjify\n")
	fmt.Fprintf(w, "# graph fingerprint: %016x\n", Fingerprint(g.graph))
	fmt.Fprintf(w, "\n")

	if g.cfg.RemoteExecDir != "" {
		fmt.Fprintf(w, "pool local_pool\n")
		fmt.Fprintf(w, " depth = %d\n", g.cfg.NumJobs)
	}

	if err := g.emitNodes(w); err != nil {
		_ = f.Close()
		return err
	}

	if err := w.Flush(); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, "failed to write build file"), "path", path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close build file"), "path", path)
	}

	span.SetAttribute("nodes", len(g.visited))
	span.SetAttribute("rules", g.ruleID)
	return nil
}

// emitNodes drives a depth-first preorder walk over the graph from the root
// set, using an explicit worklist instead of call-stack recursion. The
// visited set guarantees each output is emitted exactly once no matter how
// many parents reach it.
func (g *Generator) emitNodes(w io.Writer) error {
	stack := make([]domain.NodeID, 0, g.graph.Len())
	for i := len(g.graph.Roots) - 1; i >= 0; i-- {
		stack = append(stack, g.graph.Roots[i])
	}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := g.graph.Node(id)
		if _, seen := g.visited[node.Output]; seen {
			continue
		}
		g.visited[node.Output] = struct{}{}

		// Bare source files reach here as dependency leaves; there is
		// nothing to emit for them.
		if len(node.Recipe) == 0 && len(node.Deps) == 0 &&
			len(node.OrderOnlys) == 0 && !node.IsPhony {
			continue
		}

		if err := g.emitNode(w, node); err != nil {
			return err
		}

		// Required deps are pushed last so they pop first, in order,
		// before the order-only deps.
		for i := len(node.OrderOnlys) - 1; i >= 0; i-- {
			stack = append(stack, node.OrderOnlys[i])
		}
		for i := len(node.Deps) - 1; i >= 0; i-- {
			stack = append(stack, node.Deps[i])
		}
	}
	return nil
}

func (g *Generator) emitNode(w io.Writer, node *domain.DepNode) error {
	cmds, err := g.ev.EvalCommands(node)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to evaluate commands"), "output", node.Output.String())
	}

	ruleName := "phony"
	useLocalPool := false
	if len(cmds) > 0 {
		ruleName = g.genRuleName()
		fmt.Fprintf(w, "rule %s\n", ruleName)
		fmt.Fprintf(w, " description = build $out\n")

		useLocalPool = g.assembleCommands(cmds)
		g.emitDepfile(w)

		if g.cmd.len() > ruleCommandLimit {
			if err := g.writeResponseFile(node); err != nil {
				return err
			}
			fmt.Fprintf(w, " rspfile = $out.rsp\n")
			fmt.Fprintf(w, " rspfile_content = %s\n", g.cmd.String())
			fmt.Fprintf(w, " command = sh $out.rsp\n")
		} else {
			fmt.Fprintf(w, " command = %s\n", g.cmd.String())
		}
	}

	g.emitBuild(w, node, ruleName)
	if useLocalPool {
		fmt.Fprintf(w, " pool = local_pool\n")
	}
	return nil
}

// emitDepfile appends the sentinel space the inferencer requires, infers
// the depfile, and restores the buffer. A diagnosed inference miss is
// logged and the node is emitted without a depfile declaration.
func (g *Generator) emitDepfile(w io.Writer) {
	g.cmd.writeByte(' ')
	depfile, ok, err := DepfileFromCommand(g.cmd.String())
	g.cmd.truncateLast()
	if err != nil {
		g.log.Error(err)
		return
	}
	if !ok {
		return
	}
	fmt.Fprintf(w, " depfile = %s\n", depfile)
}

func (g *Generator) emitBuild(w io.Writer, node *domain.DepNode, ruleName string) {
	fmt.Fprintf(w, "build %s: %s", node.Output, ruleName)
	for _, d := range node.Deps {
		fmt.Fprintf(w, " %s", g.graph.Node(d).Output)
	}
	if len(node.OrderOnlys) > 0 {
		fmt.Fprintf(w, " ||")
		for _, d := range node.OrderOnlys {
			fmt.Fprintf(w, " %s", g.graph.Node(d).Output)
		}
	}
	fmt.Fprintf(w, "\n")
}

// writeResponseFile persists the assembled command for an overflowing node
// as <output>.rsp next to the build description.
func (g *Generator) writeResponseFile(node *domain.DepNode) error {
	path := filepath.Join(g.cfg.OutputDir, node.Output.String()+".rsp")
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create response file directory"), "path", dir)
		}
	}
	if err := os.WriteFile(path, []byte(g.cmd.String()), 0o644); err != nil { //nolint:gosec // build artifact
		return zerr.With(zerr.Wrap(err, "failed to write response file"), "path", path)
	}
	return nil
}

// writeScript writes the shell wrapper: shebang, the replayed export table,
// and an exec of ninja against the generated build description with the
// wrapper's own arguments forwarded.
func (g *Generator) writeScript(ctx context.Context) (err error) {
	_, span := g.tracer.Start(ctx, "write "+g.cfg.ScriptFilename())
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	path := g.cfg.ScriptPath()
	f, err := os.Create(path) //nolint:gosec // path comes from the generation config
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open wrapper script"), "path", path)
	}
	w := bufio.NewWriter(f)

	shell := g.ev.EvalVar("SHELL")
	if shell == "" {
		shell = domain.DefaultShell
	}
	fmt.Fprintf(w, "#!%s\n", shell)

	exports := g.ev.Exports()
	for _, e := range exports {
		if e.Export {
			fmt.Fprintf(w, "export %s=%s\n", e.Name, g.ev.EvalVar(e.Name.String()))
		} else {
			fmt.Fprintf(w, "unset %s\n", e.Name)
		}
	}

	fmt.Fprintf(w, "exec ninja -f %s ", g.cfg.NinjaFilename())
	if g.cfg.RemoteExecDir != "" {
		// The remote back end absorbs far more parallelism than local cores.
		fmt.Fprintf(w, "-j300 ")
	}
	fmt.Fprintf(w, "\"$@\"\n")

	if err := w.Flush(); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, "failed to write wrapper script"), "path", path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close wrapper script"), "path", path)
	}
	if err := os.Chmod(path, scriptMode); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to chmod wrapper script"), "path", path)
	}

	span.SetAttribute("exports", len(exports))
	return nil
}
