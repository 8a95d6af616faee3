package domain

import "errors"

// コアが区別して返す失敗条件の定義です。
// 外部サービス由来の失敗（通信・認可・クォータ等）はここに含めず、
// %w でラップしてそのまま呼び出し側へ伝播させます。コアは再試行も握り潰しもしません。
var (
	// ErrNotReady は、ソース画像のデコードが完了する前に合成が要求されたことを示します。
	ErrNotReady = errors.New("ソース画像がまだデコードされていません")

	// ErrNoExpansion は、4 辺すべての余白がゼロで拡張する領域が存在しないことを示します。
	ErrNoExpansion = errors.New("拡張する余白が指定されていません")

	// ErrNoImageReturned は、外部サービスの応答に画像パーツが 1 つも含まれていなかったことを示します。
	ErrNoImageReturned = errors.New("応答に画像データが含まれていませんでした")
)
