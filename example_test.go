package scenepool_test

import (
	"fmt"

	"github.com/peczenyj/scenepool"
	"github.com/peczenyj/scenepool/scene"
)

type SparkInfo struct {
	Color string
}

type Spark struct {
	*scene.Node
	scenepool.Object[*Spark, *SparkInfo]

	color string
}

func (s *Spark) Generated() { s.color = s.Info().Color }

func (s *Spark) ResetValues() { s.color = "" }

func ExampleNew() {
	root := scene.NewNode("root")
	bin := scene.NewNode("bin")

	env := scene.NewEnvironment(root, func() *Spark {
		return &Spark{Node: scene.NewNode("spark")}
	})

	// can't infer type INFO, must be explicit
	pool, err := scenepool.New[*Spark, *SparkInfo](env,
		scenepool.WithInitialSize(2),
		scenepool.WithReleasedContainer(bin, true),
	)
	if err != nil {
		panic(err)
	}

	spark := pool.Generate(&SparkInfo{Color: "red"})
	fmt.Println(spark.color, spark.State(), spark.ActiveSelf())

	spark.Release(spark) // hidden and scrubbed, back under bin
	fmt.Printf("%q %s %v %s\n", spark.color, spark.State(), spark.ActiveSelf(), spark.Parent().Name())

	fmt.Println(env.Created(), pool.Stats().CountInactive)
	// Output:
	// red got true
	// "" released false bin
	// 2 2
}

func ExamplePool_ReleaseAll() {
	env := scene.NewEnvironment(scene.NewNode("root"), func() *Spark {
		return &Spark{Node: scene.NewNode("spark")}
	})

	pool, _ := scenepool.New[*Spark, *SparkInfo](env)

	for _, color := range []string{"red", "green", "blue"} {
		pool.Generate(&SparkInfo{Color: color})
	}

	fmt.Println(pool.Len())

	pool.ReleaseAll()

	fmt.Println(pool.Len())
	// Output:
	// 3
	// 0
}
