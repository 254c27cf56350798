package armature_test

import (
	"log"
	"os"

	"github.com/aretw0/armature"
	"github.com/aretw0/armature/pkg/model"
)

// Export a minimal in-memory model to stdout.
func Example() {
	spec := &model.RobotSpec{
		Root: model.Body{
			Name:     "base",
			Mass:     1,
			Geometry: model.DefaultGeometry(),
		},
	}

	exp, err := armature.New("", armature.WithSpec(spec), armature.WithRobotName("pendulum"))
	if err != nil {
		log.Fatal(err)
	}
	if err := exp.Export(os.Stdout); err != nil {
		log.Fatal(err)
	}

	// Output:
	// <?xml version="1.0"?>
	// <robot name="pendulum">
	//   <!-- Generated from canonical YAML model description -->
	//   <link name="base">
	//     <inertial>
	//       <mass value="1"/>
	//       <inertia
	//         ixx="0"
	//         ixy="0"
	//         ixz="0"
	//         iyy="0"
	//         iyz="0"
	//         izz="0"/>
	//     </inertial>
	//     <visual>
	//       <geometry>
	//         <box size="0.1 0.1 0.1"/>
	//       </geometry>
	//       <material name="mat_base">
	//         <color rgba="0.5 0.5 0.5 1"/>
	//       </material>
	//     </visual>
	//   </link>
	// </robot>
}
