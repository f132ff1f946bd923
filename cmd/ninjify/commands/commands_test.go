package commands_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ninjify/cmd/ninjify/commands"
	"go.trai.ch/ninjify/internal/adapters/telemetry"
	"go.trai.ch/ninjify/internal/app"
	"go.trai.ch/ninjify/internal/core/domain"
	"go.trai.ch/ninjify/internal/core/ports/mocks"
	"go.trai.ch/ninjify/internal/engine/ninja"
	"go.uber.org/mock/gomock"
)

func newCLI(t *testing.T) (*commands.CLI, *mocks.MockConfigLoader, *mocks.MockGraphLoader, *mocks.MockStamper, *mocks.MockEvaluator) {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	configLoader := mocks.NewMockConfigLoader(ctrl)
	graphLoader := mocks.NewMockGraphLoader(ctrl)
	stamper := mocks.NewMockStamper(ctrl)
	evaluator := mocks.NewMockEvaluator(ctrl)

	gen := ninja.NewGenerator(log, telemetry.NewNoOpTracer())
	a := app.New(configLoader, graphLoader, gen, stamper, log)
	return commands.New(a), configLoader, graphLoader, stamper, evaluator
}

func TestGenerate_Success(t *testing.T) {
	cli, configLoader, graphLoader, stamper, evaluator := newCLI(t)

	evaluator.EXPECT().SuppressIO().Return(func() {}).AnyTimes()
	evaluator.EXPECT().EvalVar(gomock.Any()).Return("").AnyTimes()
	evaluator.EXPECT().Exports().Return(nil).AnyTimes()
	evaluator.EXPECT().EvalCommands(gomock.Any()).Return(
		[]domain.Command{{Cmd: "gcc -c a.c -o a.o"}}, nil).AnyTimes()

	g := domain.NewGraph()
	id, err := g.AddNode(domain.DepNode{
		Output: domain.Intern("a.o"),
		Recipe: []string{"gcc -c a.c -o a.o"},
	})
	require.NoError(t, err)
	g.Roots = []domain.NodeID{id}

	outDir := t.TempDir()
	configLoader.EXPECT().Load("ninjify.yaml").Return(domain.Config{}, nil)
	graphLoader.EXPECT().Load("graph.json").Return(g, evaluator, nil)
	stamper.EXPECT().Stamp(gomock.Any(), gomock.Any()).Return(nil)

	cli.SetArgs([]string{"generate", "-g", "graph.json", "-o", outDir})
	require.NoError(t, cli.Execute(context.Background()))

	_, err = os.Stat(outDir + "/build.ninja")
	assert.NoError(t, err)
}

func TestGenerate_NoGraph(t *testing.T) {
	cli, configLoader, _, _, _ := newCLI(t)

	configLoader.EXPECT().Load(gomock.Any()).Return(domain.Config{}, nil)

	cli.SetArgs([]string{"generate"})
	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrGraphNotSpecified)
}

func TestGenerate_RejectsPositionalArgs(t *testing.T) {
	cli, _, _, _, _ := newCLI(t)

	cli.SetArgs([]string{"generate", "unexpected"})
	err := cli.Execute(context.Background())
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	cli, _, _, _, _ := newCLI(t)

	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestRoot_Help(t *testing.T) {
	cli, _, _, _, _ := newCLI(t)

	cli.SetArgs([]string{"--help"})
	require.NoError(t, cli.Execute(context.Background()))
}
