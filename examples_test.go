//nolint:errcheck
package fundamentals_test

import (
	"context"
	"fmt"
	"os"
	"testing/fstest"

	fun "github.com/Pure-Company/fundamentals"
	"go.uber.org/zap"
)

// ============================================================================
// Example 1: VALUES - primitives, composites and collections
// ============================================================================

func Example_basicTypes() {
	fun.ShowBasicTypes(context.Background(), os.Stdout)
	// Output:
	// 整数: 42
	// 浮動小数点: 3.14
	// 真偽値: true
	// 文字: 字
	// タプル: (1, 2.0, '3')
	// 配列: [1 2 3 4 5]
	// 色: {R:255 G:128 B:0}
}

func Example_variables() {
	fun.ShowVariables(context.Background(), os.Stdout)
	// Output:
	// 可変: 1 -> 2
	// 不変: 3
}

func Example_collections() {
	fun.ShowCollections(context.Background(), os.Stdout)
	// Output:
	// ベクター: [1 2]
	// 文字列: こんにちは、世界！
	// 赤チーム: 20
	// 青チーム: 10
	// セット: [1 2]
}

// ============================================================================
// Example 2: RECORDS AND SUM TYPES
// ============================================================================

func Example_describable() {
	fun.ShowDescribable(context.Background(), os.Stdout)

	// Any function with the right shape is Describable too - no new type needed.
	var d fun.Describable = fun.DescribeFunc(func() string { return "匿名" }).WithPrefix("名前: ")
	fmt.Println(d.Describe())
	// Output:
	// 人物の説明: 田中さん（25歳）
	// 名前: 匿名
}

func Example_status() {
	statuses := []fun.Status{
		fun.Active{},
		fun.Inactive{},
		fun.Pending{Message: "処理中"},
		fun.Failure{Code: 500, Message: "内部エラー"},
	}
	for _, s := range statuses {
		fmt.Println(fun.DescribeStatus(s))
	}
	// Output:
	// アクティブ
	// 非アクティブ
	// 保留中: 処理中
	// エラー500: 内部エラー
}

// ============================================================================
// Example 3: CONTROL FLOW AND ERROR HANDLING
// ============================================================================

func Example_controlFlow() {
	fun.ShowControlFlow(context.Background(), os.Stdout)
	// Output:
	// 5より大きい
	// ループ結果: 10
	// n = 0
	// n = 1
	// n = 2
	// n = 3
	// n = 4
	// i = 0
	// i = 1
	// i = 2
	// i = 3
	// i = 4
}

func Example_parse() {
	fun.ShowParse(context.Background(), os.Stdout)
	// Output:
	// パース成功: 42
	// パース失敗: strconv.Atoi: parsing "abc": invalid syntax
}

func Example_optional() {
	fun.ShowOptional(context.Background(), os.Stdout)
	// Output:
	// 大きい値: 42
	// 小さい値: 3
	// 値がありません
}

func Example_fileRead() {
	fsys := fstest.MapFS{
		"greeting.txt": {Data: []byte("やあ")},
	}

	fun.ShowFileRead(fsys, "greeting.txt")(context.Background(), os.Stdout)
	fun.ShowFileRead(fsys, "does_not_exist.txt")(context.Background(), os.Stdout)
	// Output:
	// ファイル内容: やあ
	// ファイル読み込み失敗: open does_not_exist.txt: file does not exist
}

// ============================================================================
// Example 4: CLOSURES, ITERATORS AND GENERICS
// ============================================================================

func Example_closuresAndIterators() {
	fun.ShowClosures(context.Background(), os.Stdout)
	fun.ShowIterators(context.Background(), os.Stdout)
	fun.ShowLazyRange(context.Background(), os.Stdout)
	fun.ShowSum(context.Background(), os.Stdout)
	// Output:
	// クロージャ結果: 6
	// カウンター: 1 2 3
	// 処理後の数字: [6 8 10]
	// 範囲: 0
	// 範囲: 1
	// 範囲: 2
	// 範囲: 3
	// 範囲: 4
	// 合計: 15
}

func Example_longest() {
	fun.ShowLongest(context.Background(), os.Stdout)
	// Output: 長い方の文字列: こんにちは
}

func Example_genericPrinter() {
	fun.ShowGenericPrinter(context.Background(), os.Stdout)
	// Output:
	// 1
	// 2
	// 3
	// りんご
	// みかん
	// アクティブ
	// エラー404: 見つかりません
}

// ============================================================================
// Example 5: OWNERSHIP
// ============================================================================

func Example_box() {
	fun.ShowBox(context.Background(), os.Stdout)
	// Output: ボックスの値: 5
}

func Example_sharedOwnership() {
	fun.ShowSharedOwnership(context.Background(), os.Stdout)
	// Output:
	// 参照カウント(作成後): 1
	// 参照カウント(クローン後): 2
	// 参照カウント(クローン後): 3
	// 所有者1: 共有データ
	// 所有者2: 共有データ
	// 所有者3: 共有データ
	// 解放済み: 共有データ
}

// ============================================================================
// Example 6: COMPOSING DEMONSTRATIONS - no mocks, just functions
// ============================================================================

func Example_runSelected() {
	demos, err := fun.Select(fun.Demos(fun.DefaultSettings()), []string{"box", "sum"})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fun.RunAll(context.Background(), os.Stdout, zap.NewNop(), demos)
	// Output:
	// == ボックス ==
	// ボックスの値: 5
	// == スライスの合計 ==
	// 合計: 15
}

func Example_composeDemos() {
	var chain fun.DemoFunc
	chain = chain.Empty().
		Compose(fun.DemoFunc(fun.ShowLongest).WithTitle("ライフタイム")).
		Compose(fun.DemoFunc(fun.ShowBox).WithTitle("ボックス"))

	chain.Run(context.Background(), os.Stdout)
	// Output:
	// == ライフタイム ==
	// 長い方の文字列: こんにちは
	// == ボックス ==
	// ボックスの値: 5
}
