package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemly/schemly/schema"
)

func TestControllerGenerator(t *testing.T) {
	var g ControllerGenerator

	t.Run("five operations with resource wrapping", func(t *testing.T) {
		out, err := g.Generate(userModel(), testConfig())
		require.NoError(t, err)

		assert.Contains(t, out, "namespace App\\Http\\Controllers;")
		assert.Contains(t, out, "use App\\Models\\User;")
		assert.Contains(t, out, "use App\\Http\\Resources\\UserResource;")
		assert.Contains(t, out, "class UserController extends Controller")

		assert.Contains(t, out, "public function index()")
		assert.Contains(t, out, "return UserResource::collection(User::all());")
		assert.Contains(t, out, "public function show(User $user)")
		assert.Contains(t, out, "public function store(Request $request)")
		assert.Contains(t, out, "public function update(Request $request, User $user)")
		assert.Contains(t, out, "public function destroy(User $user)")
		assert.Contains(t, out, "return response()->json(null, 204);")
	})

	t.Run("validation rules from nullability", func(t *testing.T) {
		out, err := g.Generate(userModel(), testConfig())
		require.NoError(t, err)
		assert.Contains(t, out, "'name' => 'required',")
		assert.Contains(t, out, "'email' => 'required',")
		assert.Contains(t, out, "'age' => 'nullable',")
	})

	t.Run("plain returns without resources", func(t *testing.T) {
		cfg := testConfig()
		cfg.Generate.Resources = false
		out, err := g.Generate(userModel(), cfg)
		require.NoError(t, err)
		assert.Contains(t, out, "return User::all();")
		assert.Contains(t, out, "return $user;")
		assert.NotContains(t, out, "UserResource")
	})
}

func TestResourceGenerator(t *testing.T) {
	var g ResourceGenerator

	m := userModel()
	m.SoftDeletes = true
	out, err := g.Generate(m, testConfig())
	require.NoError(t, err)

	assert.Contains(t, out, "class UserResource extends JsonResource")
	assert.Contains(t, out, "public function toArray(Request $request): array")
	assert.Contains(t, out, "'id' => $this->id,")
	assert.Contains(t, out, "'email' => $this->email,")
	assert.Contains(t, out, "'created_at' => $this->created_at,")
	assert.Contains(t, out, "'deleted_at' => $this->deleted_at,")
}

func TestFactoryGenerator(t *testing.T) {
	var g FactoryGenerator

	t.Run("name heuristics beat type fallbacks", func(t *testing.T) {
		out, err := g.Generate(userModel(), testConfig())
		require.NoError(t, err)

		assert.Contains(t, out, "class UserFactory extends Factory")
		assert.Contains(t, out, "protected $model = User::class;")
		assert.Contains(t, out, "'email' => fake()->email(),")
		assert.Contains(t, out, "'name' => fake()->name(),")
		assert.Contains(t, out, "'age' => fake()->numberBetween(1, 100),")
	})

	t.Run("type fallbacks", func(t *testing.T) {
		m := userModel()
		m.Fields = []schema.Field{
			{Name: "body", Type: schema.TypeText},
			{Name: "active", Type: schema.TypeBoolean},
			{Name: "meta", Type: schema.TypeJSON},
			{Name: "token", Type: schema.TypeUUID},
			{Name: "level", Type: schema.TypeEnum, EnumValues: []schema.EnumValue{{Value: "low"}, {Value: "high"}}},
			{Name: "source_ip", Type: schema.TypeInet},
		}
		out, err := g.Generate(m, testConfig())
		require.NoError(t, err)

		assert.Contains(t, out, "'body' => fake()->text(),")
		assert.Contains(t, out, "'active' => fake()->boolean(),")
		assert.Contains(t, out, "'meta' => fake()->words(3),")
		assert.Contains(t, out, "'token' => fake()->uuid(),")
		assert.Contains(t, out, "'level' => fake()->randomElement(['low', 'high']),")
		assert.Contains(t, out, "'source_ip' => fake()->ipv4(),")
	})

	t.Run("factory imports the model from its layout namespace", func(t *testing.T) {
		cfg := testConfig()
		cfg.UseDDD = true
		out, err := g.Generate(userModel(), cfg)
		require.NoError(t, err)
		assert.Contains(t, out, "namespace App\\Domain\\User\\Factories;")
		assert.Contains(t, out, "use App\\Domain\\User\\Models\\User;")
	})
}

func TestDTOGenerator(t *testing.T) {
	var g DTOGenerator

	t.Run("constructor, fromArray and toArray", func(t *testing.T) {
		out, err := g.Generate(userModel(), testConfig())
		require.NoError(t, err)

		assert.Contains(t, out, "namespace App\\DTOs;")
		assert.Contains(t, out, "class UserDTO {")
		assert.Contains(t, out, "public int $id")
		assert.Contains(t, out, "public string $name")
		assert.Contains(t, out, "public string $email")
		assert.Contains(t, out, "public ?int $age")
		assert.Contains(t, out, "public ?string $created_at")
		assert.Contains(t, out, "public ?string $updated_at")
		assert.NotContains(t, out, "deleted_at")

		assert.Contains(t, out, "$data['id']")
		assert.Contains(t, out, "$data['age']")
		assert.Contains(t, out, "'email' => $this->email")
	})

	t.Run("soft deletes add the marker", func(t *testing.T) {
		m := userModel()
		m.SoftDeletes = true
		out, err := g.Generate(m, testConfig())
		require.NoError(t, err)
		assert.Contains(t, out, "public ?string $deleted_at")
		assert.Contains(t, out, "$data['deleted_at']")
		assert.Contains(t, out, "'deleted_at' => $this->deleted_at")
	})
}

func TestPivotGenerator(t *testing.T) {
	var g PivotGenerator

	pivot := &schema.PivotTable{
		Name:        "role_user",
		Model1:      "Role",
		Model2:      "User",
		ForeignKey1: "role_id",
		ForeignKey2: "user_id",
		AdditionalFields: []schema.Field{
			{Name: "assigned_by", Type: schema.TypeBigInteger, Nullable: true},
		},
		Timestamps: true,
	}

	t.Run("junction table migration", func(t *testing.T) {
		out, err := g.GeneratePivot(pivot, testConfig())
		require.NoError(t, err)

		assert.Contains(t, out, "Schema::create('role_user', function (Blueprint $table) {")
		assert.Contains(t, out, "$table->foreignId('role_id')->constrained('roles')->cascadeOnDelete();")
		assert.Contains(t, out, "$table->foreignId('user_id')->constrained('users')->cascadeOnDelete();")
		assert.Contains(t, out, "$table->bigInteger('assigned_by')->nullable();")
		assert.Contains(t, out, "$table->timestamps();")
		assert.Contains(t, out, "Schema::dropIfExists('role_user');")
	})

	t.Run("file path", func(t *testing.T) {
		assert.Equal(t,
			"/tmp/app/database/migrations/2024_01_15_103045_create_role_user_table.php",
			g.PivotFilePath(pivot, testConfig()))
	})

	t.Run("invalid pivot definitions are rejected", func(t *testing.T) {
		bad := *pivot
		bad.Name = "role-user"
		_, err := g.GeneratePivot(&bad, testConfig())
		require.Error(t, err)
		assert.True(t, errors.Is(err, schema.ErrInvalidIdentifier))

		bad = *pivot
		bad.AdditionalFields = []schema.Field{{Name: "assigned_by"}}
		out, err := g.GeneratePivot(&bad, testConfig())
		require.Error(t, err)
		assert.True(t, errors.Is(err, schema.ErrInvalidField))
		assert.Empty(t, out)
	})

	t.Run("generic entry point is a defined error", func(t *testing.T) {
		_, err := g.Generate(userModel(), testConfig())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrWrongArtifact))
		assert.True(t, IsGenerationError(err))
	})
}
